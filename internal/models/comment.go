package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	PostID  string `gorm:"type:uuid;index;not null" json:"post_id"`
	Content string `gorm:"not null" json:"content"`

	AuthorUID    string `gorm:"index;not null" json:"author_uid"`
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`

	// Reserved: present in the schema, no toggle endpoint yet.
	Upvotes   int `gorm:"default:0" json:"upvotes"`
	Downvotes int `gorm:"default:0" json:"downvotes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
