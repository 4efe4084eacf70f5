package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

type UserHandler struct {
	users store.Users
	log   *zap.Logger
}

// CreateUser provisions a user record on first sign-in with an external
// identity. New users start with the user role and a bronze badge.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "uid, name, and email are required"})
		return
	}

	user := models.User{
		UID:    input.UID,
		Name:   input.Name,
		Email:  input.Email,
		Avatar: input.Avatar,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"userId":  user.UID,
	})
}

// GetUser returns a user's public profile.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PromoteToAdmin grants the admin role. The transition is one
// directional; there is no demotion.
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	if err := h.users.PromoteToAdmin(c.Request.Context(), c.Param("uid")); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user promoted to admin"})
}
