package contest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContestStatus_Valid(t *testing.T) {
	for _, s := range []ContestStatus{StatusDraft, StatusActive, StatusVoting, StatusEnded, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ContestStatus("INVALID").Valid())
	assert.False(t, ContestStatus("").Valid())
	assert.False(t, ContestStatus("active").Valid(), "enum is case-sensitive")
}

func TestContestStatus_CanTransition(t *testing.T) {
	legal := []struct {
		from, to ContestStatus
	}{
		{StatusDraft, StatusActive},
		{StatusActive, StatusVoting},
		{StatusVoting, StatusEnded},
		{StatusDraft, StatusCancelled},
		{StatusActive, StatusCancelled},
		{StatusVoting, StatusCancelled},
		{StatusEnded, StatusCancelled},
	}
	for _, tc := range legal {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	illegal := []struct {
		from, to ContestStatus
	}{
		{StatusDraft, StatusVoting},
		{StatusDraft, StatusEnded},
		{StatusActive, StatusDraft},
		{StatusVoting, StatusActive},
		{StatusEnded, StatusActive},
		{StatusCancelled, StatusDraft},
		{StatusCancelled, StatusActive},
		{StatusActive, StatusActive},
	}
	for _, tc := range illegal {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
