package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMeetingStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "APPROVED", "REJECTED", "COMPLETED", "CANCELLED"} {
		status, ok := ParseMeetingStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, MeetingStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "SCHEDULED", "DONE"} {
		_, ok := ParseMeetingStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestMeetingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    MeetingStatus
		to      MeetingStatus
		allowed bool
	}{
		{MeetingStatusPending, MeetingStatusApproved, true},
		{MeetingStatusPending, MeetingStatusRejected, true},
		{MeetingStatusPending, MeetingStatusCancelled, true},
		{MeetingStatusPending, MeetingStatusCompleted, false},
		{MeetingStatusPending, MeetingStatusPending, false},
		{MeetingStatusApproved, MeetingStatusCompleted, true},
		{MeetingStatusApproved, MeetingStatusCancelled, true},
		{MeetingStatusApproved, MeetingStatusRejected, false},
		{MeetingStatusApproved, MeetingStatusPending, false},
		{MeetingStatusRejected, MeetingStatusApproved, false},
		{MeetingStatusRejected, MeetingStatusCancelled, false},
		{MeetingStatusCompleted, MeetingStatusCancelled, false},
		{MeetingStatusCancelled, MeetingStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestParseConnectionStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "APPROVED", "REJECTED"} {
		status, ok := ParseConnectionStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, ConnectionStatus(valid), status)
	}

	for _, invalid := range []string{"", "approved", "CANCELLED", "COMPLETED"} {
		_, ok := ParseConnectionStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestConnectionStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ConnectionStatus
		to      ConnectionStatus
		allowed bool
	}{
		{ConnectionStatusPending, ConnectionStatusApproved, true},
		{ConnectionStatusPending, ConnectionStatusRejected, true},
		{ConnectionStatusPending, ConnectionStatusPending, false},
		{ConnectionStatusApproved, ConnectionStatusRejected, false},
		{ConnectionStatusApproved, ConnectionStatusPending, false},
		{ConnectionStatusRejected, ConnectionStatusApproved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
