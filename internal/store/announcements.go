package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/models"
)

type announcementRepo struct {
	db *gorm.DB
}

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return apperr.FromStore(err, "announcement not found")
	}
	return nil
}

func (r *announcementRepo) List(ctx context.Context) ([]models.Announcement, error) {
	announcements := []models.Announcement{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&announcements).Error
	if err != nil {
		return nil, apperr.FromStore(err, "announcement not found")
	}
	return announcements, nil
}
