package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"

	ReportTypeComment = "comment"
)

// ValidReportStatus reports whether s is one of the enumerated statuses.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

type Report struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Type string `gorm:"default:comment" json:"type"`

	CommentID  string `gorm:"type:uuid;not null" json:"comment_id"`
	PostID     string `gorm:"type:uuid;not null" json:"post_id"`
	ReportedBy string `gorm:"not null" json:"reported_by"`
	Reason     string `gorm:"not null" json:"reason"`

	// Copied by value when the report is filed so moderation survives
	// deletion of the underlying comment.
	ContentSnapshot string `json:"content_snapshot"`

	Status    string    `gorm:"default:pending;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type FileReportRequest struct {
	CommentID      string `json:"commentId" binding:"required"`
	PostID         string `json:"postId" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
	CommentContent string `json:"commentContent" binding:"required"`
}

type SetReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
