package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

type TagHandler struct {
	tags store.Tags
	log  *zap.Logger
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var input models.CreateTagRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tag := models.Tag{Name: input.Name}
	if err := h.tags.Create(c.Request.Context(), &tag); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
