package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID       int64  `json:"id" db:"id" example:"1"`                          // Unique identifier for the student record
	Name     string `json:"name" db:"name" example:"Asha Verma"`             // Display name
	Email    string `json:"email" db:"email" example:"asha@example.com"`     // Unique email address
	Phone    string `json:"phone" db:"phone" example:"+91 98765 43210"`      // Contact phone number
	Password string `json:"-" db:"password"`                                 // Bcrypt password hash, never serialized
}
