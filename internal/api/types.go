// Package api defines the shared JSON response envelopes used by all
// HTTP handlers.
package api

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the tokens issued on login and refresh.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
