package dto

import "time"

// APIResponse is the standard envelope for successful API responses
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-08-12T12:01:05.123Z"`
}

// SuccessResponse represents a message-only success response
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}
