package types

import "github.com/hallowlabs/academy-backend/stores/gdb/contest"

type CreateSubmissionRequest struct {
	ContestID   uint   `json:"contest_id" binding:"required"`
	Address     string `json:"address" binding:"required,wallet"`
	MediaURL    string `json:"media_url" binding:"required,max=500"`
	MediaType   string `json:"media_type" binding:"omitempty,oneof=image video audio"`
	Description string `json:"description" binding:"max=2000"`
}

type SubmissionListResp struct {
	Result []contest.Submission `json:"result"`
}

type VoteRequest struct {
	SubmissionID uint   `json:"submission_id" binding:"required"`
	Address      string `json:"address" binding:"required,wallet"`
}

type OnChainIDResp struct {
	SubmissionID uint   `json:"submission_id"`
	OnChainID    *int64 `json:"on_chain_id"`
}
