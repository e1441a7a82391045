package dto

// AnswerRequest is the payload for answering an inquiry.
type AnswerRequest struct {
	Content    string `json:"content"`
	AnswererID string `json:"answerer_id"`
}

// LoginRequest carries the admin password.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse returns the session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
