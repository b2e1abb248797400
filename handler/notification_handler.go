package handler

import (
	"net/http"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/middleware"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/service"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gin-gonic/gin"
)

type NotificationHandler interface {
	HandleList(c *gin.Context)
	HandleMarkRead(c *gin.Context)
	HandleMarkAllRead(c *gin.Context)
	HandleDelete(c *gin.Context)
	HandleCreateAssignment(c *gin.Context)
	HandleStream(c *gin.Context)
}

type notificationHandler struct {
	notificationService service.NotificationService
	hub                 *service.NotificationHub
}

func NewNotificationHandler(notificationService service.NotificationService, hub *service.NotificationHub) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		hub:                 hub,
	}
}

func (h *notificationHandler) HandleList(c *gin.Context) {
	claims := middleware.GetClaims(c)

	notifications, unread, err := h.notificationService.ListForRecipient(c, claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if notifications == nil {
		notifications = []*types.Notification{}
	}

	c.JSON(http.StatusOK, types.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	})
}

func (h *notificationHandler) HandleMarkRead(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id := c.Param("notificationId")

	notification, err := h.notificationService.MarkRead(c, claims.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

func (h *notificationHandler) HandleMarkAllRead(c *gin.Context) {
	claims := middleware.GetClaims(c)

	if err := h.notificationService.MarkAllRead(c, claims.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Message: "All notifications marked as read",
	})
}

func (h *notificationHandler) HandleDelete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id := c.Param("notificationId")

	if err := h.notificationService.Delete(c, claims.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Message: "Notification deleted",
	})
}

func (h *notificationHandler) HandleCreateAssignment(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req types.CreateAssignmentNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	notification, err := h.notificationService.CreateAssignmentNotification(c, claims.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NotificationResponse{
		Message:      "Notification created",
		Notification: notification,
	})
}

func (h *notificationHandler) HandleStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	h.hub.HandleConnection(claims.ID, c.Writer, c.Request)
}
