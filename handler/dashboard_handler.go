package handler

import (
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/middleware"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type DashboardHandler interface {
	HandleAdminDashboard(c *gin.Context)
	HandleEmployeeDashboard(c *gin.Context)
}

type dashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *dashboardHandler) HandleAdminDashboard(c *gin.Context) {
	summary, err := h.dashboardService.AdminSummary(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   summary,
	})
}

func (h *dashboardHandler) HandleEmployeeDashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	summary, err := h.dashboardService.EmployeeSummary(c, claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   summary,
	})
}
