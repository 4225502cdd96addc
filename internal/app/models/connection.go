package models

import "time"

// StudentMentorConnection is an ongoing student-mentor pairing with an
// approval status, independent of any specific meeting. Party emails and the
// mentor name are denormalized onto the row; at most one connection may exist
// per (student, mentor) pair.
type StudentMentorConnection struct {
	ID             int64            `json:"id" db:"id" example:"1"`
	StudentID      int64            `json:"studentId" db:"student_id" example:"3"`
	StudentEmail   string           `json:"studentEmail" db:"student_email" example:"asha@example.com"`
	MentorID       int64            `json:"mentorId" db:"mentor_id" example:"7"`
	MentorEmail    string           `json:"mentorEmail" db:"mentor_email" example:"ravi@example.com"`
	MentorName     string           `json:"mentorName" db:"mentor_name" example:"Ravi Kumar"`
	SelectedSkills string           `json:"selectedSkills" db:"selected_skills" example:"[\"Go\",\"PostgreSQL\"]"` // JSON-encoded array of skill names
	ConnectionDate time.Time        `json:"connectionDate" db:"connection_date"`
	Status         ConnectionStatus `json:"status" db:"status" example:"PENDING"`
}
