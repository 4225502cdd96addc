package models

import "time"

// Meeting defines a meeting request between a student and a mentor,
// based on the 'meetings' table.
type Meeting struct {
	ID             int64         `json:"id" db:"id" example:"1"`
	StudentID      int64         `json:"studentId" db:"student_id" example:"3"`
	MentorID       int64         `json:"mentorId" db:"mentor_id" example:"7"`
	SelectedSkills string        `json:"selectedSkills" db:"selected_skills" example:"Go,PostgreSQL"` // Comma-joined skill names, free text
	Question       string        `json:"question" db:"question" example:"How do I structure a service layer?"`
	Status         MeetingStatus `json:"status" db:"status" example:"PENDING"`
	RequestDate    time.Time     `json:"requestDate" db:"request_date"`
	IsScheduled    bool          `json:"isScheduled" db:"is_scheduled"`
}

// MeetingWithStudent joins the requesting student into a meeting row.
type MeetingWithStudent struct {
	Meeting *Meeting `json:"meeting"`
	Student *Student `json:"student"`
}

// MeetingWithMentor joins the addressed mentor into a meeting row.
type MeetingWithMentor struct {
	Meeting *Meeting `json:"meeting"`
	Mentor  *Mentor  `json:"mentor"`
}

// MeetingDetails joins both parties into a meeting row.
type MeetingDetails struct {
	Meeting *Meeting `json:"meeting"`
	Student *Student `json:"student"`
	Mentor  *Mentor  `json:"mentor"`
}
