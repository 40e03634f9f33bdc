package contest

import (
	"time"

	"gorm.io/gorm"
)

// Submission is one wallet's entry into a contest. The (contest_id,
// submitter_address) unique index is the backstop for concurrent duplicate
// attempts; the service pre-checks only to produce a friendlier message.
type Submission struct {
	gorm.Model
	ContestID        uint   `gorm:"uniqueIndex:idx_contest_submitter;not null" json:"contest_id"`
	SubmitterID      uint   `gorm:"index" json:"submitter_id"`
	SubmitterAddress string `gorm:"uniqueIndex:idx_contest_submitter;size:100;not null" json:"submitter_address"`
	MediaURL         string `gorm:"size:500;not null" json:"media_url"`
	MediaType        string `gorm:"size:20" json:"media_type"`
	Description      string `gorm:"type:text" json:"description"`

	// OnChainID is assigned by the voting contract and backfilled after the
	// submission tx is observed mined.
	OnChainID *int64 `gorm:"index" json:"on_chain_id,omitempty"`

	// VoteCount mirrors count(votes) for sort ordering. Updated only inside
	// the same transaction as the Vote row mutation.
	VoteCount int64 `gorm:"default:0" json:"vote_count"`
}

func SubmissionTableName() string {
	return "submissions"
}

// Vote rows are hard-deleted on unvote; a soft delete would leave the
// (submission_id, voter_address) unique index blocking a later re-vote.
type Vote struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	SubmissionID uint      `gorm:"uniqueIndex:idx_submission_voter;not null" json:"submission_id"`
	VoterAddress string    `gorm:"uniqueIndex:idx_submission_voter;size:100;not null" json:"voter_address"`
}

func VoteTableName() string {
	return "votes"
}
