package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	Tag     string `gorm:"index" json:"tag"`

	AuthorUID    string `gorm:"index;not null" json:"author_uid"`
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// RankedPost is a Post plus the vote aggregates derived per query.
// Popularity is upvotes minus downvotes and is never persisted.
type RankedPost struct {
	Post
	Upvotes    int `json:"upvotes"`
	Downvotes  int `json:"downvotes"`
	Popularity int `json:"popularity"`
}

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Tag     string `json:"tag" binding:"required"`
}
