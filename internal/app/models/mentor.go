package models

// Mentor defines the mentor model based on the 'mentors' table.
// Skills are not embedded here; the mentor_skills join table is loaded
// independently via the skill repository.
type Mentor struct {
	ID           int64  `json:"id" db:"id" example:"1"`                       // Unique identifier for the mentor record
	Name         string `json:"name" db:"name" example:"Ravi Kumar"`          // Display name
	Email        string `json:"email" db:"email" example:"ravi@example.com"`  // Unique email address
	Phone        string `json:"phone" db:"phone" example:"+91 91234 56789"`   // Contact phone number
	Password     string `json:"-" db:"password"`                              // Bcrypt password hash, never serialized
	CalendlyLink string `json:"calendlyLink" db:"calendly_link"`              // Optional external scheduling link

	// Relations (populated when needed)
	Skills []*Skill `json:"skills,omitempty"` // Skills attached via mentor_skills
}
