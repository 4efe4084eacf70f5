package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/models"
)

type userRepo struct {
	db *gorm.DB
}

// Create provisions a user. A duplicate uid or email is a Conflict.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	var existing models.User
	err := r.db.WithContext(ctx).Where("uid = ?", user.UID).Take(&existing).Error
	if err == nil {
		return apperr.New(apperr.Conflict, "user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.FromStore(err, "user not found")
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if len(user.Badges) == 0 {
		user.Badges = []string{"bronze"}
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return apperr.FromStore(err, "user not found")
	}
	return nil
}

func (r *userRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("uid = ?", uid).Take(&user).Error
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	return &user, nil
}

// PromoteToAdmin is the only role transition: user to admin, never back.
func (r *userRepo) PromoteToAdmin(ctx context.Context, uid string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("uid = ?", uid).
		Update("role", models.RoleAdmin)
	if res.Error != nil {
		return apperr.FromStore(res.Error, "user not found")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return nil
}
