package handler

import (
	"errors"
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a storage-level failure and surfaces as a generic
// server error without internal detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidRequest) || errors.Is(err, types.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
	case errors.Is(err, types.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
	case errors.Is(err, types.ErrUserNotFound) ||
		errors.Is(err, types.ErrTaskNotFound) ||
		errors.Is(err, types.ErrNotificationNotFound) ||
		errors.Is(err, types.ErrDepartmentNotFound) ||
		errors.Is(err, types.ErrProjectNotFound) ||
		errors.Is(err, types.ErrVendorNotFound):
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: "Internal server error",
		})
	}
}
