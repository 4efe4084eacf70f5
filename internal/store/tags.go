package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/models"
)

type tagRepo struct {
	db *gorm.DB
}

func (r *tagRepo) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return apperr.FromStore(err, "tag not found")
	}
	return nil
}

func (r *tagRepo) List(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, apperr.FromStore(err, "tag not found")
	}
	return tags, nil
}
