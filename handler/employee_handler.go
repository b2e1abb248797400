package handler

import (
	"net/http"
	"strconv"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler interface {
	HandleCreateEmployee(c *gin.Context)
	HandleGetEmployee(c *gin.Context)
	HandleListEmployees(c *gin.Context)
	HandleUpdateEmployee(c *gin.Context)
	HandleDeleteEmployee(c *gin.Context)
}

type employeeHandler struct {
	userService service.UserService
}

func NewEmployeeHandler(userService service.UserService) EmployeeHandler {
	return &employeeHandler{
		userService: userService,
	}
}

func (h *employeeHandler) HandleCreateEmployee(c *gin.Context) {
	var req types.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	user, err := h.userService.CreateEmployee(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Employee created",
		Data:    user,
	})
}

func (h *employeeHandler) HandleGetEmployee(c *gin.Context) {
	id := c.Param("employeeId")

	user, err := h.userService.GetUser(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   user,
	})
}

// HandleListEmployees lists employees. With a department query it returns
// every member of that department, otherwise it paginates the full roster.
func (h *employeeHandler) HandleListEmployees(c *gin.Context) {
	if department := c.Query("department"); department != "" {
		users, err := h.userService.GetUserByDepartment(c, department)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.DataResponse{
			Status: true,
			Data:   users,
		})
		return
	}

	var page, limit int64
	pageStr := c.Query("page")
	if pageStr == "" {
		page = 1
	} else {
		page, _ = strconv.ParseInt(pageStr, 10, 64)
	}
	limitStr := c.Query("limit")
	if limitStr == "" {
		limit = 10
	} else {
		limit, _ = strconv.ParseInt(limitStr, 10, 64)
	}

	users, total, err := h.userService.PaginateUser(c, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.PaginateResponse{
		Total:    total,
		Elements: users,
		Page:     page,
		Limit:    limit,
	})
}

func (h *employeeHandler) HandleUpdateEmployee(c *gin.Context) {
	id := c.Param("employeeId")

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	user, err := h.userService.UpdateProfile(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Employee updated",
		Data:    user,
	})
}

func (h *employeeHandler) HandleDeleteEmployee(c *gin.Context) {
	id := c.Param("employeeId")

	if err := h.userService.DeleteUser(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Employee deleted",
	})
}
