package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/auth"
	"github.com/nerdtalks/backend/internal/middleware"
	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

type AuthHandler struct {
	users  store.Users
	issuer *auth.JWTVerifier
	log    *zap.Logger
}

// Register handles first-party registration: hash the password, create
// the user, and issue a token.
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, h.log, apperr.Wrap(apperr.Internal, "internal server error", err))
		return
	}

	user := models.User{
		UID:      uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Avatar:   input.Avatar,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		fail(c, h.log, err)
		return
	}

	token, err := h.issuer.Issue(user.UID, user.Name, user.Email)
	if err != nil {
		fail(c, h.log, apperr.Wrap(apperr.Internal, "internal server error", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"token":   token,
		"user":    user,
	})
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token, err := h.issuer.Issue(user.UID, user.Name, user.Email)
	if err != nil {
		fail(c, h.log, apperr.Wrap(apperr.Internal, "internal server error", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

// GetMe returns the current authenticated user.
func (h *AuthHandler) GetMe(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	user, err := h.users.GetByUID(c.Request.Context(), claims.UID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
