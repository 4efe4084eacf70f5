package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/middleware"
	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

type AnnouncementHandler struct {
	announcements store.Announcements
	users         store.Users
	log           *zap.Logger
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	var input models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.GetByUID(c.Request.Context(), claims.UID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	announcement := models.Announcement{
		Title:      input.Title,
		Content:    input.Content,
		AuthorUID:  user.UID,
		AuthorName: user.Name,
	}

	if err := h.announcements.Create(c.Request.Context(), &announcement); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	announcements, err := h.announcements.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": announcements})
}
