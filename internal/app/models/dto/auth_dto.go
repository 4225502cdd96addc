package dto

// LoginRequest carries login credentials for students and mentors
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// LoginResponse is the plaintext identity descriptor returned on a
// successful login. No token is issued; clients carry identity manually.
type LoginResponse struct {
	Message  string `json:"message" example:"Login successful"`
	UserType string `json:"userType" example:"student"`
	Email    string `json:"email" example:"asha@example.com"`
	Name     string `json:"name" example:"Asha Verma"`
	ID       int64  `json:"id" example:"3"`
}

// RegisterStudentRequest carries the fields for a new student account
type RegisterStudentRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha Verma"`
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Phone    string `json:"phone" example:"+91 98765 43210"`
	Password string `json:"password" binding:"required,min=6" example:"s3cret"`
}

// RegisterMentorRequest carries the fields for a new mentor account
type RegisterMentorRequest struct {
	Name         string `json:"name" binding:"required" example:"Ravi Kumar"`
	Email        string `json:"email" binding:"required,email" example:"ravi@example.com"`
	Phone        string `json:"phone" example:"+91 91234 56789"`
	Password     string `json:"password" binding:"required,min=6" example:"s3cret"`
	CalendlyLink string `json:"calendlyLink" example:"https://calendly.com/ravi"`
}

// UpdateStudentRequest carries a partial student update; empty fields are
// left unchanged.
type UpdateStudentRequest struct {
	Name     string `json:"name" example:"Asha Verma"`
	Email    string `json:"email" binding:"omitempty,email" example:"asha@example.com"`
	Phone    string `json:"phone" example:"+91 98765 43210"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// UpdateMentorRequest carries a partial mentor update; empty fields are
// left unchanged.
type UpdateMentorRequest struct {
	Name         string `json:"name" example:"Ravi Kumar"`
	Email        string `json:"email" binding:"omitempty,email" example:"ravi@example.com"`
	Phone        string `json:"phone" example:"+91 91234 56789"`
	Password     string `json:"password" binding:"omitempty,min=6"`
	CalendlyLink string `json:"calendlyLink" example:"https://calendly.com/ravi"`
}
