package models

// Skill represents a named tag attachable to mentors
type Skill struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Go"` // Unique, matched case-sensitively
}
