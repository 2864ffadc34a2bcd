// File: internal/dto/auth_response.go
package dto

import "marketplace-api/internal/model"

// swagger:model dto.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	Email    string `json:"email" example:"alice@example.com"`
	Username string `json:"username" example:"alice"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Username: u.Username}
}

// swagger:model dto.SignupResponse
type SignupResponse struct {
	Message string       `json:"message" example:"User registered successfully"`
	User    UserResponse `json:"user"`
}

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Message   string       `json:"message" example:"Login successful."`
	User      UserResponse `json:"user"`
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresIn string       `json:"expiresIn" example:"1h"`
}
