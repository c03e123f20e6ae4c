package models

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // Error detail
}
