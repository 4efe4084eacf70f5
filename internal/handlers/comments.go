package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/middleware"
	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

type CommentHandler struct {
	comments store.Comments
	posts    store.Posts
	users    store.Users
	log      *zap.Logger
}

// GetComments pages a post's comments newest first, defaults (1, 10).
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID := c.Param("postId")
	page := store.ParsePage(c.Query("page"), c.Query("limit"), 10)

	result, err := h.comments.ListByPost(c.Request.Context(), postID, page)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments":    result.Comments,
		"totalCount":  result.Total,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
	})
}

// CreateComment adds a comment authored by the verified identity.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	postID := c.Param("postId")
	if _, err := h.posts.GetByID(c.Request.Context(), postID); err != nil {
		fail(c, h.log, err)
		return
	}

	user, err := h.users.GetByUID(c.Request.Context(), claims.UID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	comment := models.Comment{
		PostID:       postID,
		Content:      input.Content,
		AuthorUID:    user.UID,
		AuthorName:   user.Name,
		AuthorAvatar: user.Avatar,
	}

	if err := h.comments.Create(c.Request.Context(), &comment); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment removes a comment (owner or admin). Filed reports keep
// their content snapshot and are not touched.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	commentID := c.Param("commentId")
	comment, err := h.comments.GetByID(c.Request.Context(), commentID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if comment.AuthorUID != claims.UID {
		user, err := h.users.GetByUID(c.Request.Context(), claims.UID)
		if err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "you can only delete your own comments"})
			return
		}
	}

	if err := h.comments.Delete(c.Request.Context(), commentID); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
