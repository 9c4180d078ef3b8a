package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/dto"
	"github.com/flicky/eatsy-store/internal/model"
	"github.com/flicky/eatsy-store/internal/store"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{store: s}
}

func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": toNotifications(h.store.Notifications())})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := h.store.Notify(req.Message, req.Type)
	c.JSON(http.StatusCreated, dto.NotificationResponse{ID: id, Message: req.Message, Type: notificationType(req)})
}

// Dismiss is idempotent: unknown ids still answer 204.
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.store.DismissNotification(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func notificationType(req dto.NotificationRequest) model.NotificationType {
	if req.Type == "" {
		return model.NotificationInfo
	}
	return req.Type
}
