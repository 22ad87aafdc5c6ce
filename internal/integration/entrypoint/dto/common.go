// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AmountRequest carries a single amount. Numbers and numeric strings are accepted.
type AmountRequest struct {
	Amount interface{} `json:"amount"`
}
