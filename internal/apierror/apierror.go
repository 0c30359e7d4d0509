// Package apierror defines the error envelopes the API hands to clients.
// Handlers translate internal errors into these shapes so that gorm or
// driver details never reach the cashier's screen.
package apierror

// APIError carries a single human-readable message for 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError adds per-field messages for request binding failures.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
