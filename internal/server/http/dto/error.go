package dto

// ErrorResponse carries a safe, generic failure message; internal detail
// stays in the server logs.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service availability.
type HealthResponse struct {
	Status string `json:"status"`
}
