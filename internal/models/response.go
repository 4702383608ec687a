package models

// StatusResponse is the standard envelope for mutation results.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
