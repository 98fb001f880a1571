package dto

// PublicProfile is the sanitized view of the signed-in user.
// It never carries the password hash or salt.
type PublicProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SigninResp represents the success body for the /auth/signin endpoint.
type SigninResp struct {
	Token string        `json:"token"`
	User  PublicProfile `json:"user"`
}
