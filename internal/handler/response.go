package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"door-booking-api/internal/apperr"
	"door-booking-api/internal/model"
	"door-booking-api/internal/store"
)

func userJSON(u *model.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
		"last_login": u.LastLogin,
		"user_color": u.Color,
	}
}

func apptJSON(a *model.Appointment) gin.H {
	return gin.H{
		"id":             a.ID,
		"user_id":        a.UserID,
		"date":           a.Date.Format(model.DateFormat),
		"time_slot":      a.TimeSlot,
		"door_type":      a.DoorType,
		"comment":        a.Comment,
		"invoice_number": a.InvoiceNumber,
		"address":        a.Address,
		"is_weekend":     a.IsWeekend,
		"created_at":     a.CreatedAt,
		"updated_at":     a.UpdatedAt,
	}
}

func notifJSON(n *model.Notification) gin.H {
	return gin.H{
		"id":             n.ID,
		"user_id":        n.UserID,
		"appointment_id": n.AppointmentID,
		"message":        n.Message,
		"is_read":        n.IsRead,
		"created_at":     n.CreatedAt,
	}
}

// uuidParam returns the :id route param; a malformed id reads as a
// missing resource rather than a database cast error.
func (h *Handler) uuidParam(c *gin.Context, notFoundMsg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.fail(c, apperr.NotFound(notFoundMsg))
		return "", false
	}
	return id, true
}

// fail renders an error as {"error": msg}. Anything outside the
// taxonomy (and the store's slot sentinel) is a 500 with no internals
// leaked.
func (h *Handler) fail(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		c.JSON(apperr.Status(e), gin.H{"error": e.Msg})
		return
	}
	if errors.Is(err, store.ErrSlotTaken) || store.IsUniqueViolation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This time slot is already booked"})
		return
	}
	h.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
