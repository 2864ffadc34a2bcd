package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Email    string `json:"email" form:"email" validate:"omitempty,email,max=255" example:"alice@example.com"`
	Username string `json:"username" form:"username" validate:"omitempty,max=255" example:"alice"`
	Password string `json:"password" form:"password" validate:"omitempty,max=72" example:"Secret123!"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"omitempty,max=255" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"omitempty,max=72" example:"Secret123!"`
}
