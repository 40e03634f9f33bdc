package types

import "github.com/hallowlabs/academy-backend/stores/gdb/contest"

// CreateContestRequest carries ISO 8601 time strings; parsing happens in the
// service so malformed dates map to a 400.
type CreateContestRequest struct {
	Title         string `json:"title" binding:"required,max=200"`
	Description   string `json:"description" binding:"required"`
	Category      string `json:"category" binding:"required,max=50"`
	PrizeAmount   string `json:"prize_amount" binding:"required"`
	PrizeToken    string `json:"prize_token" binding:"max=20"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	VotingEndTime string `json:"voting_end_time" binding:"required"`
}

type UpdateContestRequest struct {
	Title           string `json:"title" binding:"max=200"`
	Description     string `json:"description"`
	Category        string `json:"category" binding:"max=50"`
	PrizeAmount     string `json:"prize_amount"`
	PrizeToken      string `json:"prize_token" binding:"max=20"`
	ContractAddress string `json:"contract_address" binding:"max=100"`
}

type UpdateContestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ContestListResp struct {
	Result []contest.Contest `json:"result"`
	Total  int64             `json:"total"`
}

type ContestStatusResp struct {
	Status contest.ContestStatus `json:"status"`
	TxHash string                `json:"tx_hash,omitempty"`
}
