package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UID      string `gorm:"primaryKey" json:"uid"` // external auth subject id
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `json:"-"`
	Avatar   string `json:"avatar"`

	Role   string         `gorm:"default:user" json:"role"`
	Badges pq.StringArray `gorm:"type:text[]" json:"badges"`

	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

type CreateUserRequest struct {
	UID    string `json:"uid" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Avatar string `json:"avatar"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
