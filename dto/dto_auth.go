package dto

// ===== Request =====
type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ===== Response =====
type TokenResponse struct {
	Token string `json:"token"`
}
