package dto

// ==================== AUTHENTICATION DTOs ====================

type SignupRequest struct {
	Name     string `json:"name" validate:"required" example:"Ana Torres"`
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"hunter22"`
}

func (r SignupRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required" example:"hunter22"`
}

func (r LoginRequest) Validate() error {
	return GetValidator().Struct(r)
}

// AuthResponse is returned by signup and login. The credential is never
// part of UserResponse. Token is only set on login.
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token,omitempty"`
}
