package dto

import "time"

// CodeLoginRequest entrada para login con código de 6 dígitos.
type CodeLoginRequest struct {
	Code string `json:"codigo"`
}

// SignInRequest entrada para login con email y contraseña.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest entrada para registro de un empleado.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"nombre"`
}

// UserResponse salida de un usuario (sin contraseña ni código).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}
