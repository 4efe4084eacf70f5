package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/models"
)

type commentRepo struct {
	db *gorm.DB
}

type CommentPage struct {
	Comments []models.Comment
	PageInfo
}

func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return apperr.FromStore(err, "comment not found")
	}
	return nil
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&comment).Error
	if err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}
	return &comment, nil
}

// ListByPost pages a post's comments newest first.
func (r *commentRepo) ListByPost(ctx context.Context, postID string, page PageRequest) (*CommentPage, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&total).Error
	if err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}

	comments := []models.Comment{}
	err = r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&comments).Error
	if err != nil {
		return nil, apperr.FromStore(err, "comment not found")
	}

	return &CommentPage{Comments: comments, PageInfo: NewPageInfo(total, page)}, nil
}

func (r *commentRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return apperr.FromStore(res.Error, "comment not found")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return nil
}
