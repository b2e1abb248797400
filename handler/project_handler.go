package handler

import (
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type ProjectHandler interface {
	HandleCreate(c *gin.Context)
	HandleGet(c *gin.Context)
	HandleList(c *gin.Context)
	HandleUpdate(c *gin.Context)
	HandleDelete(c *gin.Context)
}

type projectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
	}
}

func (h *projectHandler) HandleCreate(c *gin.Context) {
	var req types.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	project, err := h.projectService.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Project created",
		Data:    project,
	})
}

func (h *projectHandler) HandleGet(c *gin.Context) {
	project, err := h.projectService.Get(c, c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   project,
	})
}

func (h *projectHandler) HandleList(c *gin.Context) {
	projects, err := h.projectService.List(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   projects,
	})
}

func (h *projectHandler) HandleUpdate(c *gin.Context) {
	var req types.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	project, err := h.projectService.Update(c, c.Param("projectId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Project updated",
		Data:    project,
	})
}

func (h *projectHandler) HandleDelete(c *gin.Context) {
	if err := h.projectService.Delete(c, c.Param("projectId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Project deleted",
	})
}
