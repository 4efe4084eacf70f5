// Package store is the data layer. Each domain exposes a small interface
// backed by a GORM repository; handlers depend on the interfaces so they
// can be exercised without a live database.
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/nerdtalks/backend/internal/models"
)

// Posts covers post CRUD, the ranked feed, and the vote engine.
type Posts interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.RankedPost, error)
	Delete(ctx context.Context, id string) error
	ListFeed(ctx context.Context, q FeedQuery) (*FeedPage, error)
	ListByAuthor(ctx context.Context, authorUID string, page PageRequest) (*AuthorPage, error)
	ApplyVote(ctx context.Context, postID, voterID string, op VoteOp) error
}

// Comments covers per-post comment CRUD and the dashboard listing.
type Comments interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string, page PageRequest) (*CommentPage, error)
	Delete(ctx context.Context, id string) error
}

// Reports covers the report lifecycle.
type Reports interface {
	File(ctx context.Context, report *models.Report) error
	List(ctx context.Context, page PageRequest, status string) (*ReportPage, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// Users covers provisioning, lookup, and role promotion.
type Users interface {
	Create(ctx context.Context, user *models.User) error
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	PromoteToAdmin(ctx context.Context, uid string) error
}

// Tags covers the tag catalog.
type Tags interface {
	Create(ctx context.Context, tag *models.Tag) error
	List(ctx context.Context) ([]models.Tag, error)
}

// Announcements covers site announcements.
type Announcements interface {
	Create(ctx context.Context, a *models.Announcement) error
	List(ctx context.Context) ([]models.Announcement, error)
}

// Stores groups the concrete repositories over one database handle.
type Stores struct {
	Posts         Posts
	Comments      Comments
	Reports       Reports
	Users         Users
	Tags          Tags
	Announcements Announcements
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Posts:         &postRepo{db: db},
		Comments:      &commentRepo{db: db},
		Reports:       &reportRepo{db: db},
		Users:         &userRepo{db: db},
		Tags:          &tagRepo{db: db},
		Announcements: &announcementRepo{db: db},
	}
}
