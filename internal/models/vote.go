package models

import "time"

// Vote is one voter's membership in a post's vote sets: value +1 means
// the voter is in the upvoter set, -1 the downvoter set. The unique index
// on (post_id, voter_id) keeps the two sets mutually exclusive.
type Vote struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  string `gorm:"type:uuid;uniqueIndex:idx_post_voter;not null" json:"post_id"`
	VoterID string `gorm:"uniqueIndex:idx_post_voter;not null" json:"voter_id"`

	Value     int       `gorm:"not null" json:"value"` // +1 or -1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VoteRequest struct {
	Type string `json:"type" binding:"required"`
	// Display-only hint from older clients; the acting voter is always
	// taken from the verified identity, never from the body.
	Email string `json:"email"`
}
