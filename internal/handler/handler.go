package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"door-booking-api/internal/middleware"
	"door-booking-api/internal/session"
	"door-booking-api/internal/store"
)

const sessionTTL = 24 * time.Hour

type Handler struct {
	store    *store.Store
	sessions session.Store
	secret   string
	logger   *zap.Logger
}

func New(st *store.Store, sessions session.Store, secret string, logger *zap.Logger) *Handler {
	return &Handler{store: st, sessions: sessions, secret: secret, logger: logger}
}

func (h *Handler) Routes(r *gin.Engine, rl *middleware.RateLimiter) {
	api := r.Group("/api")
	api.POST("/login", middleware.RateLimit(rl), h.Login)
	api.POST("/logout", h.Logout)

	authed := api.Group("", middleware.Auth(h.secret, h.sessions))
	authed.GET("/current", h.CurrentUser)

	admin := authed.Group("", middleware.RequireAdmin())
	admin.GET("/users", h.ListUsers)
	admin.GET("/users/:id", h.GetUser)
	admin.POST("/users", h.CreateUser)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)

	authed.GET("/appointments", h.ListAppointments)
	authed.POST("/appointments", h.CreateAppointment)
	authed.GET("/appointments/:id", h.GetAppointment)
	authed.PUT("/appointments/:id", h.UpdateAppointment)
	authed.DELETE("/appointments/:id", h.DeleteAppointment)

	authed.GET("/calendar", h.Calendar)

	authed.GET("/notifications", h.ListNotifications)
	authed.POST("/notifications/:id/read", h.MarkNotificationRead)
}
