package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Status transition errors
	ErrInvalidStatus           = errors.New("unknown status value")
	ErrInvalidStatusTransition = errors.New("illegal status transition")
)

// Student errors
var (
	ErrStudentNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "student not found"}
	ErrStudentEmailExists = &CustomError{Err: ErrConflict, Message: "student with this email already exists"}
)

// Mentor errors
var (
	ErrMentorNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "mentor not found"}
	ErrMentorEmailExists = &CustomError{Err: ErrConflict, Message: "mentor with this email already exists"}
)

// Skill errors
var (
	ErrSkillNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "skill not found"}
	ErrSkillAlreadyExists = &CustomError{Err: ErrConflict, Message: "skill with this name already exists"}
	ErrSkillInUse         = &CustomError{Err: ErrConflict, Message: "cannot delete skill as it is associated with mentors"}
	ErrSkillNotAttached   = &CustomError{Err: ErrBadRequest, Message: "skill not found for this mentor"}
	ErrMentorHasNoSkills  = &CustomError{Err: ErrBadRequest, Message: "no skills found for this mentor"}
)

// Meeting errors
var (
	ErrMeetingNotFound = &CustomError{Err: ErrResourceNotFound, Message: "meeting not found"}
	ErrNotMeetingOwner = &CustomError{Err: ErrPermissionDenied, Message: "you can only cancel your own meetings"}
)

// Connection errors
var (
	ErrConnectionNotFound = &CustomError{Err: ErrResourceNotFound, Message: "connection not found"}
	ErrConnectionExists   = &CustomError{Err: ErrConflict, Message: "connection already exists between this student and mentor"}
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
