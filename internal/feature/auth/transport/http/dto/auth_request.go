// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// AuthRequest represents the action-dispatched body of POST /auth.
// Field presence is validated by the handler rather than binding tags because
// the required set depends on the action, and the error messages are part of
// the API contract with the frontend.
type AuthRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
