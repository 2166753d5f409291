package models

// LoginResponse is the body returned by the login endpoint on success.
// The display fields mirror the convenience claims embedded in the token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// ResetTokenRequest asks for a password-reset token for the given account.
type ResetTokenRequest struct {
	Email string `json:"email"`
}

// ResetTokenResponse carries a freshly minted password-reset token.
type ResetTokenResponse struct {
	ResetToken string `json:"reset_token"`
}

// ResetPasswordRequest replaces an account credential using a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// MessageResponse is a generic informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the generic error body: a single human-readable detail
// string, never internal error text.
type DetailResponse struct {
	Detail string `json:"detail"`
}
