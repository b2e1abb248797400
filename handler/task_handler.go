package handler

import (
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/middleware"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type TaskHandler interface {
	HandleAddTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleListTasks(c *gin.Context)
	HandleAssignTask(c *gin.Context)
	HandleUpdateEmployeeTask(c *gin.Context)
}

type taskHandler struct {
	taskService service.TaskService
	userService service.UserService
}

func NewTaskHandler(taskService service.TaskService, userService service.UserService) TaskHandler {
	return &taskHandler{
		taskService: taskService,
		userService: userService,
	}
}

func (h *taskHandler) HandleAddTask(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req types.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	task, err := h.taskService.AddTask(c, claims.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TaskResponse{
		Message: "Task added",
		Task:    task,
	})
}

func (h *taskHandler) HandleUpdateTask(c *gin.Context) {
	claims := middleware.GetClaims(c)
	taskID := c.Param("taskId")

	var req types.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	task, err := h.taskService.UpdateTask(c, claims.ID, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TaskResponse{
		Message: "Task updated",
		Task:    task,
	})
}

func (h *taskHandler) HandleDeleteTask(c *gin.Context) {
	claims := middleware.GetClaims(c)
	taskID := c.Param("taskId")

	task, err := h.taskService.DeleteTask(c, claims.ID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TaskResponse{
		Message: "Task deleted",
		Task:    task,
	})
}

func (h *taskHandler) HandleListTasks(c *gin.Context) {
	claims := middleware.GetClaims(c)

	tasks, err := h.taskService.ListTasks(c, claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   tasks,
	})
}

// HandleAssignTask creates a task in another employee's collection. Admin
// route; the acting admin becomes the assigner.
func (h *taskHandler) HandleAssignTask(c *gin.Context) {
	claims := middleware.GetClaims(c)
	employeeID := c.Param("employeeId")

	var req types.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	actor, err := h.userService.GetUser(c, claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.taskService.AssignTask(c, actor, employeeID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TaskResponse{
		Message: "Task assigned",
		Task:    task,
	})
}

func (h *taskHandler) HandleUpdateEmployeeTask(c *gin.Context) {
	employeeID := c.Param("employeeId")
	taskID := c.Param("taskId")

	var req types.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	task, err := h.taskService.UpdateTask(c, employeeID, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TaskResponse{
		Message: "Task updated",
		Task:    task,
	})
}
