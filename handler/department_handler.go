package handler

import (
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type DepartmentHandler interface {
	HandleCreate(c *gin.Context)
	HandleGet(c *gin.Context)
	HandleList(c *gin.Context)
	HandleUpdate(c *gin.Context)
	HandleDelete(c *gin.Context)
}

type departmentHandler struct {
	departmentService service.DepartmentService
}

func NewDepartmentHandler(departmentService service.DepartmentService) DepartmentHandler {
	return &departmentHandler{
		departmentService: departmentService,
	}
}

func (h *departmentHandler) HandleCreate(c *gin.Context) {
	var req types.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	department, err := h.departmentService.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Department created",
		Data:    department,
	})
}

func (h *departmentHandler) HandleGet(c *gin.Context) {
	department, err := h.departmentService.Get(c, c.Param("departmentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   department,
	})
}

func (h *departmentHandler) HandleList(c *gin.Context) {
	departments, err := h.departmentService.List(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   departments,
	})
}

func (h *departmentHandler) HandleUpdate(c *gin.Context) {
	var req types.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	department, err := h.departmentService.Update(c, c.Param("departmentId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Department updated",
		Data:    department,
	})
}

func (h *departmentHandler) HandleDelete(c *gin.Context) {
	if err := h.departmentService.Delete(c, c.Param("departmentId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Department deleted",
	})
}
