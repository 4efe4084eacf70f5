package store

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/models"
)

// VoteOp is one of the four vote-toggle operations.
type VoteOp string

const (
	VoteOpUp         VoteOp = "upvote"
	VoteOpDown       VoteOp = "downvote"
	VoteOpRemoveUp   VoteOp = "-upvote"
	VoteOpRemoveDown VoteOp = "-downvote"
)

// ParseVoteOp validates a client-supplied operation value.
func ParseVoteOp(s string) (VoteOp, error) {
	switch VoteOp(s) {
	case VoteOpUp, VoteOpDown, VoteOpRemoveUp, VoteOpRemoveDown:
		return VoteOp(s), nil
	}
	return "", apperr.New(apperr.InvalidArgument, "vote type must be one of upvote, downvote, -upvote, -downvote")
}

// ApplyVote runs one vote operation for (postID, voterID) as a single
// atomic statement. upvote/downvote upsert on the (post_id, voter_id)
// unique index, so a voter switching sides never transits through a
// state where they hold both votes; reapplying the same operation is a
// no-op. Removals delete only the matching side and leave the other
// untouched. Removing a vote that is not present succeeds silently,
// matching set-remove semantics.
func (r *postRepo) ApplyVote(ctx context.Context, postID, voterID string, op VoteOp) error {
	var exists int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", postID).
		Count(&exists).Error
	if err != nil {
		return apperr.FromStore(err, "post not found")
	}
	if exists == 0 {
		return apperr.New(apperr.NotFound, "post not found")
	}

	switch op {
	case VoteOpUp:
		return r.upsertVote(ctx, postID, voterID, 1)
	case VoteOpDown:
		return r.upsertVote(ctx, postID, voterID, -1)
	case VoteOpRemoveUp:
		return r.removeVote(ctx, postID, voterID, 1)
	case VoteOpRemoveDown:
		return r.removeVote(ctx, postID, voterID, -1)
	default:
		return apperr.New(apperr.InvalidArgument, "unknown vote operation")
	}
}

func (r *postRepo) upsertVote(ctx context.Context, postID, voterID string, value int) error {
	vote := models.Vote{PostID: postID, VoterID: voterID, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}, {Name: "voter_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&vote).Error
	if err != nil {
		return apperr.FromStore(err, "post not found")
	}
	return nil
}

func (r *postRepo) removeVote(ctx context.Context, postID, voterID string, value int) error {
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND voter_id = ? AND value = ?", postID, voterID, value).
		Delete(&models.Vote{}).Error
	if err != nil {
		return apperr.FromStore(err, "post not found")
	}
	return nil
}
