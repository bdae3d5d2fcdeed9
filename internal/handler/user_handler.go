package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"door-booking-api/internal/apperr"
	"door-booking-api/internal/auth"
	"door-booking-api/internal/model"
	"door-booking-api/internal/store"
)

func roleListError() *apperr.Error {
	msg := "Role must be one of:"
	for i, r := range model.Roles {
		if i > 0 {
			msg += ","
		}
		msg += " " + string(r)
	}
	return apperr.Validation(msg)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "User not found")
	if !ok {
		return
	}
	u, err := h.store.UserByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.NotFound("User not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(u)})
}

type createUserReq struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	UserColor string `json:"user_color"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" || req.Role == "" {
		h.fail(c, apperr.Validation("Username, password, and role are required"))
		return
	}
	role := model.Role(req.Role)
	if !role.Valid() {
		h.fail(c, roleListError())
		return
	}

	ctx := c.Request.Context()
	if taken, err := h.store.UsernameTaken(ctx, req.Username, ""); err != nil {
		h.fail(c, err)
		return
	} else if taken {
		h.fail(c, apperr.Conflict("Username already exists"))
		return
	}
	if req.Email != "" {
		if taken, err := h.store.EmailTaken(ctx, req.Email, ""); err != nil {
			h.fail(c, err)
			return
		} else if taken {
			h.fail(c, apperr.Conflict("Email already exists"))
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		Color:        req.UserColor,
	}
	if u.Color == "" {
		u.Color = model.DefaultColor
	}
	if req.Email != "" {
		u.Email = &req.Email
	}

	if err := h.store.CreateUser(ctx, u); err != nil {
		if store.IsUniqueViolation(err) {
			// lost the race with a concurrent create
			h.fail(c, apperr.Conflict("Username or email already exists"))
			return
		}
		h.fail(c, err)
		return
	}

	created, err := h.store.UserByID(ctx, u.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    userJSON(created),
	})
}

type updateUserReq struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	Email     *string `json:"email"`
	UserColor *string `json:"user_color"`
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "User not found")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	u, err := h.store.UserByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.NotFound("User not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Validation("No data provided"))
		return
	}

	if req.Username != nil && *req.Username != u.Username {
		if taken, err := h.store.UsernameTaken(ctx, *req.Username, u.ID); err != nil {
			h.fail(c, err)
			return
		} else if taken {
			h.fail(c, apperr.Conflict("Username already exists"))
			return
		}
		u.Username = *req.Username
	}

	if req.Email != nil {
		if *req.Email == "" {
			u.Email = nil
		} else if u.Email == nil || *req.Email != *u.Email {
			if taken, err := h.store.EmailTaken(ctx, *req.Email, u.ID); err != nil {
				h.fail(c, err)
				return
			} else if taken {
				h.fail(c, apperr.Conflict("Email already exists"))
				return
			}
			u.Email = req.Email
		}
	}

	if req.Role != nil {
		role := model.Role(*req.Role)
		if !role.Valid() {
			h.fail(c, roleListError())
			return
		}
		u.Role = role
	}

	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			h.fail(c, err)
			return
		}
		u.PasswordHash = hash
	}

	if req.UserColor != nil {
		u.Color = *req.UserColor
	}

	if err := h.store.UpdateUser(ctx, u); err != nil {
		if store.IsUniqueViolation(err) {
			h.fail(c, apperr.Conflict("Username or email already exists"))
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    userJSON(u),
	})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "User not found")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	u, err := h.store.UserByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.NotFound("User not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if u.Role == model.RoleAdmin {
		n, err := h.store.CountAdmins(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		if n <= 1 {
			h.fail(c, apperr.Policy("Cannot delete the last admin user"))
			return
		}
	}

	if err := h.store.DeleteUser(ctx, u.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
