package contest

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContestStatus string

const (
	StatusDraft     ContestStatus = "DRAFT"
	StatusActive    ContestStatus = "ACTIVE"
	StatusVoting    ContestStatus = "VOTING"
	StatusEnded     ContestStatus = "ENDED"
	StatusCancelled ContestStatus = "CANCELLED"
)

// transitions is the closed set of legal status moves. CANCELLED is a sink
// reachable from every other state.
var transitions = map[ContestStatus][]ContestStatus{
	StatusDraft:     {StatusActive, StatusCancelled},
	StatusActive:    {StatusVoting, StatusCancelled},
	StatusVoting:    {StatusEnded, StatusCancelled},
	StatusEnded:     {StatusCancelled},
	StatusCancelled: {},
}

// Valid reports whether s is a member of the status enum.
func (s ContestStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from s to next is legal.
func (s ContestStatus) CanTransition(next ContestStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Contest struct {
	gorm.Model
	Slug            string          `gorm:"uniqueIndex;size:200" json:"slug"`
	Title           string          `gorm:"size:200;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"size:50;index" json:"category"`
	PrizeAmount     decimal.Decimal `gorm:"type:numeric(38,18)" json:"prize_amount"`
	PrizeToken      string          `gorm:"size:20;default:ETH" json:"prize_token"`
	StartTime       time.Time       `gorm:"not null" json:"start_time"`
	EndTime         time.Time       `gorm:"not null" json:"end_time"`
	VotingEndTime   time.Time       `gorm:"not null" json:"voting_end_time"`
	Status          ContestStatus   `gorm:"size:20;default:DRAFT;index" json:"status"`
	CreatorID       uint            `gorm:"index" json:"creator_id"`
	ContractAddress string          `gorm:"size:100" json:"contract_address"`

	Submissions []Submission `gorm:"foreignKey:ContestID" json:"submissions,omitempty"`
}

func ContestTableName() string {
	return "contests"
}
