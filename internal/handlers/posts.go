package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/middleware"
	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

type PostHandler struct {
	posts store.Posts
	users store.Users
	log   *zap.Logger
}

// GetPosts serves the public feed: optional case-insensitive tag filter,
// optional popularity ordering, paginated with defaults (1, 5).
func (h *PostHandler) GetPosts(c *gin.Context) {
	q := store.FeedQuery{
		Page:             store.ParsePage(c.Query("page"), c.Query("limit"), 5),
		Tag:              c.Query("tag"),
		SortByPopularity: c.Query("sortByPopularity") == "true",
	}

	page, err := h.posts.ListFeed(c.Request.Context(), q)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":       page.Posts,
		"total":       page.Total,
		"currentPage": page.CurrentPage,
		"totalPages":  page.TotalPages,
	})
}

// GetPost returns a single post with its derived vote aggregates.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.posts.GetByID(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetUserPosts is the author-scoped dashboard listing, defaults (1, 10).
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	authorUID := c.Param("authorId")
	page := store.ParsePage(c.Query("page"), c.Query("limit"), 10)

	result, err := h.posts.ListByAuthor(c.Request.Context(), authorUID, page)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":       result.Posts,
		"totalPosts":  result.Total,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
		"hasNextPage": result.HasNextPage,
		"hasPrevPage": result.HasPrevPage,
	})
}

// CreatePost creates a post authored by the verified identity.
func (h *PostHandler) CreatePost(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.GetByUID(c.Request.Context(), claims.UID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	post := models.Post{
		Title:        input.Title,
		Content:      input.Content,
		Tag:          input.Tag,
		AuthorUID:    user.UID,
		AuthorName:   user.Name,
		AuthorAvatar: user.Avatar,
	}

	if err := h.posts.Create(c.Request.Context(), &post); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// DeletePost removes a post (owner or admin) along with its votes and
// comments.
func (h *PostHandler) DeletePost(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	postID := c.Param("postId")
	post, err := h.posts.GetByID(c.Request.Context(), postID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if post.AuthorUID != claims.UID {
		user, err := h.users.GetByUID(c.Request.Context(), claims.UID)
		if err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "you can only delete your own posts"})
			return
		}
	}

	if err := h.posts.Delete(c.Request.Context(), postID); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// VotePost applies one vote-toggle operation. The voter identity comes
// from the gate's claims; the body email field is ignored.
func (h *PostHandler) VotePost(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	var input models.VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	op, err := store.ParseVoteOp(input.Type)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	voter := claims.Email
	if voter == "" {
		voter = claims.UID
	}

	if err := h.posts.ApplyVote(c.Request.Context(), c.Param("postId"), voter, op); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": string(op) + " applied"})
}
