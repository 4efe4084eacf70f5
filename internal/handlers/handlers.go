package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/auth"
	"github.com/nerdtalks/backend/internal/store"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	Post         *PostHandler
	Comment      *CommentHandler
	Report       *ReportHandler
	User         *UserHandler
	Tag          *TagHandler
	Announcement *AnnouncementHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(stores *store.Stores, issuer *auth.JWTVerifier, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         &AuthHandler{users: stores.Users, issuer: issuer, log: log},
		Post:         &PostHandler{posts: stores.Posts, users: stores.Users, log: log},
		Comment:      &CommentHandler{comments: stores.Comments, posts: stores.Posts, users: stores.Users, log: log},
		Report:       &ReportHandler{reports: stores.Reports, log: log},
		User:         &UserHandler{users: stores.Users, log: log},
		Tag:          &TagHandler{tags: stores.Tags, log: log},
		Announcement: &AnnouncementHandler{announcements: stores.Announcements, users: stores.Users, log: log},
	}
}

// fail writes the taxonomy status and caller-facing message for err.
func fail(c *gin.Context, log *zap.Logger, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		log.Error("request failed", zap.Error(err))
	}
	c.JSON(apperr.Status(err), gin.H{"message": apperr.Message(err)})
}
