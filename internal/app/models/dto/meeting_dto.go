package dto

// CreateMeetingRequest carries a new meeting request from a student
type CreateMeetingRequest struct {
	StudentID      int64    `json:"studentId" binding:"required" example:"3"`
	MentorID       int64    `json:"mentorId" binding:"required" example:"7"`
	SelectedSkills []string `json:"selectedSkills" example:"Go,PostgreSQL"`
	Question       string   `json:"question" example:"How do I structure a service layer?"`
}

// UpdateMeetingStatusRequest moves a meeting to a new status
type UpdateMeetingStatusRequest struct {
	Status string `json:"status" binding:"required" example:"APPROVED"`
}

// CancelMeetingRequest identifies the party cancelling a meeting
type CancelMeetingRequest struct {
	Role   string `json:"role" binding:"required,oneof=student mentor" example:"student"`
	UserID int64  `json:"userId" binding:"required" example:"3"`
}
