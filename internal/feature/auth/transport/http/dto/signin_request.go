// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SigninReq represents the request body for the /auth/signin endpoint.
// It includes required-field and email-format validation.
type SigninReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
