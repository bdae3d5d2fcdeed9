package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"door-booking-api/internal/apperr"
	"door-booking-api/internal/middleware"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	notifs, err := h.store.ListNotifications(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(notifs))
	for i := range notifs {
		out = append(out, notifJSON(&notifs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := h.uuidParam(c, "Notification not found")
	if !ok {
		return
	}
	n, err := h.store.MarkNotificationRead(c.Request.Context(), id, middleware.UserID(c))
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.NotFound("Notification not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notifJSON(n),
	})
}
