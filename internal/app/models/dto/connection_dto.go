package dto

// CreateConnectionRequest carries a new connection request from a student.
// SelectedSkills accepts either a JSON array string or a comma-separated
// list; the service normalizes it before storage.
type CreateConnectionRequest struct {
	StudentID      int64  `json:"studentId" binding:"required" example:"3"`
	MentorID       int64  `json:"mentorId" binding:"required" example:"7"`
	SelectedSkills string `json:"selectedSkills" example:"Go,PostgreSQL"`
}

// UpdateConnectionStatusRequest moves a connection to a new status
type UpdateConnectionStatusRequest struct {
	Status string `json:"status" binding:"required" example:"APPROVED"`
}
