package utils

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
