package dto

// SimpleLoginRequest is the body of POST /auth/simple-login.
type SimpleLoginRequest struct {
	UserID string `json:"user_id"`
}

// SimpleLoginResponse carries the issued session token.
type SimpleLoginResponse struct {
	SessionToken string `json:"session_token"`
	UserID       string `json:"user_id"`
}

// VerifySessionResponse is returned when a session token resolves to a user.
type VerifySessionResponse struct {
	Valid          bool   `json:"valid"`
	UserID         string `json:"user_id"`
	UserIdentifier string `json:"user_identifier"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
