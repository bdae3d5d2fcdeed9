package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"door-booking-api/internal/apperr"
	"door-booking-api/internal/auth"
	"door-booking-api/internal/middleware"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		h.fail(c, apperr.Validation("Username and password are required"))
		return
	}

	ctx := c.Request.Context()
	u, err := h.store.UserByUsername(ctx, req.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.Unauthorized("Invalid username or password"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		h.fail(c, apperr.Unauthorized("Invalid username or password"))
		return
	}

	if err := h.store.TouchLastLogin(ctx, u.ID); err != nil {
		h.fail(c, err)
		return
	}
	now := time.Now().UTC()
	u.LastLogin = &now

	s, err := h.sessions.Create(ctx, u.ID, sessionTTL)
	if err != nil {
		h.fail(c, err)
		return
	}
	tok, err := auth.MakeToken(u.ID, string(u.Role), s.ID, h.secret, sessionTTL)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   tok,
		"user":    userJSON(u),
	})
}

// Logout revokes the token's session; it succeeds even without a
// usable token so clients can always reset.
func (h *Handler) Logout(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if claims, err := auth.ParseToken(raw, h.secret); err == nil {
		_ = h.sessions.Delete(c.Request.Context(), claims.SessionID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := h.store.UserByID(ctx, middleware.UserID(c))
	if errors.Is(err, pgx.ErrNoRows) {
		// the account is gone; the session is dead weight
		_ = h.sessions.Delete(ctx, middleware.SessionID(c))
		h.fail(c, apperr.NotFound("User not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(u)})
}
