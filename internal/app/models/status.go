package models

// MeetingStatus is the closed set of meeting lifecycle states.
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "PENDING"
	MeetingStatusApproved  MeetingStatus = "APPROVED"
	MeetingStatusRejected  MeetingStatus = "REJECTED"
	MeetingStatusCompleted MeetingStatus = "COMPLETED"
	MeetingStatusCancelled MeetingStatus = "CANCELLED"
)

// meetingTransitions defines the legal transitions per state.
// REJECTED, COMPLETED and CANCELLED are terminal.
var meetingTransitions = map[MeetingStatus][]MeetingStatus{
	MeetingStatusPending:  {MeetingStatusApproved, MeetingStatusRejected, MeetingStatusCancelled},
	MeetingStatusApproved: {MeetingStatusCompleted, MeetingStatusCancelled},
}

// ParseMeetingStatus validates a raw status string against the closed set.
func ParseMeetingStatus(s string) (MeetingStatus, bool) {
	switch MeetingStatus(s) {
	case MeetingStatusPending, MeetingStatusApproved, MeetingStatusRejected,
		MeetingStatusCompleted, MeetingStatusCancelled:
		return MeetingStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	for _, allowed := range meetingTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// ConnectionStatus is the closed set of connection approval states.
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "PENDING"
	ConnectionStatusApproved ConnectionStatus = "APPROVED"
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
)

// connectionTransitions defines the legal transitions per state.
// APPROVED and REJECTED are terminal.
var connectionTransitions = map[ConnectionStatus][]ConnectionStatus{
	ConnectionStatusPending: {ConnectionStatusApproved, ConnectionStatusRejected},
}

// ParseConnectionStatus validates a raw status string against the closed set.
func ParseConnectionStatus(s string) (ConnectionStatus, bool) {
	switch ConnectionStatus(s) {
	case ConnectionStatusPending, ConnectionStatusApproved, ConnectionStatusRejected:
		return ConnectionStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s ConnectionStatus) CanTransitionTo(next ConnectionStatus) bool {
	for _, allowed := range connectionTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}
