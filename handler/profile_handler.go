package handler

import (
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/middleware"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type ProfileHandler interface {
	HandleGetProfile(c *gin.Context)
	HandleUpdateProfile(c *gin.Context)
}

type profileHandler struct {
	userService service.UserService
}

func NewProfileHandler(userService service.UserService) ProfileHandler {
	return &profileHandler{
		userService: userService,
	}
}

func (h *profileHandler) HandleGetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)

	user, err := h.userService.GetUser(c, claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   user,
	})
}

func (h *profileHandler) HandleUpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	user, err := h.userService.UpdateProfile(c, claims.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Profile updated",
		Data:    user,
	})
}
