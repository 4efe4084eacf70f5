package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/models"
)

type postRepo struct {
	db *gorm.DB
}

// FeedQuery selects and orders the public feed.
type FeedQuery struct {
	Page             PageRequest
	Tag              string // case-insensitive exact match when set
	SortByPopularity bool
}

type FeedPage struct {
	Posts []models.RankedPost
	PageInfo
}

type AuthorPage struct {
	Posts []models.RankedPost
	PageInfo
}

func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return apperr.FromStore(err, "post not found")
	}
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*models.RankedPost, error) {
	var post models.RankedPost
	err := r.ranked(ctx).Where("posts.id = ?", id).Take(&post).Error
	if err != nil {
		return nil, apperr.FromStore(err, "post not found")
	}
	return &post, nil
}

// Delete removes a post together with its vote rows and comments so no
// stale popularity inputs survive.
func (r *postRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return apperr.FromStore(res.Error, "post not found")
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.NotFound, "post not found")
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return apperr.FromStore(err, "post not found")
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return apperr.FromStore(err, "post not found")
		}
		return nil
	})
}

// ListFeed pages through posts with popularity derived per query from
// the votes table. The secondary created_at key keeps equal-popularity
// ordering deterministic; exact created_at ties are implementation
// defined. Totals are scoped to the tag filter.
func (r *postRepo) ListFeed(ctx context.Context, q FeedQuery) (*FeedPage, error) {
	counted := r.db.WithContext(ctx).Model(&models.Post{})
	if q.Tag != "" {
		counted = counted.Where("LOWER(posts.tag) = LOWER(?)", q.Tag)
	}

	var total int64
	if err := counted.Count(&total).Error; err != nil {
		return nil, apperr.FromStore(err, "post not found")
	}

	listed := r.ranked(ctx)
	if q.Tag != "" {
		listed = listed.Where("LOWER(posts.tag) = LOWER(?)", q.Tag)
	}
	if q.SortByPopularity {
		listed = listed.Order("popularity DESC, posts.created_at DESC")
	} else {
		listed = listed.Order("posts.created_at DESC")
	}

	posts := []models.RankedPost{}
	err := listed.Offset(q.Page.Offset()).Limit(q.Page.Limit).Find(&posts).Error
	if err != nil {
		return nil, apperr.FromStore(err, "post not found")
	}

	return &FeedPage{Posts: posts, PageInfo: NewPageInfo(total, q.Page)}, nil
}

// ListByAuthor is the author-scoped dashboard variant, newest first.
func (r *postRepo) ListByAuthor(ctx context.Context, authorUID string, page PageRequest) (*AuthorPage, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("author_uid = ?", authorUID).
		Count(&total).Error
	if err != nil {
		return nil, apperr.FromStore(err, "post not found")
	}

	posts := []models.RankedPost{}
	err = r.ranked(ctx).
		Where("posts.author_uid = ?", authorUID).
		Order("posts.created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, apperr.FromStore(err, "post not found")
	}

	return &AuthorPage{Posts: posts, PageInfo: NewPageInfo(total, page)}, nil
}

// ranked joins posts against the per-post vote aggregates. Popularity is
// upvotes minus downvotes, computed here and never written back.
func (r *postRepo) ranked(ctx context.Context) *gorm.DB {
	voteAgg := r.db.Model(&models.Vote{}).
		Select("post_id, " +
			"SUM(CASE WHEN value = 1 THEN 1 ELSE 0 END) AS upvotes, " +
			"SUM(CASE WHEN value = -1 THEN 1 ELSE 0 END) AS downvotes").
		Group("post_id")

	return r.db.WithContext(ctx).Model(&models.Post{}).
		Select("posts.*, " +
			"COALESCE(v.upvotes, 0) AS upvotes, " +
			"COALESCE(v.downvotes, 0) AS downvotes, " +
			"COALESCE(v.upvotes, 0) - COALESCE(v.downvotes, 0) AS popularity").
		Joins("LEFT JOIN (?) v ON v.post_id = posts.id", voteAgg)
}
