package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	AuthorUID  string `gorm:"not null" json:"author_uid"`
	AuthorName string `json:"author_name"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
