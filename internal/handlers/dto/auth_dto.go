package dto

import (
	"time"

	"github.com/rafabene/hiresphere-backend/internal/services"
)

// RegisterRequest representa a requisição de cadastro
type RegisterRequest struct {
	Email           string  `json:"email" binding:"required,email,max=100"`
	Password        string  `json:"password" binding:"required,complex_password"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required,eqfield=Password"`
	Name            string  `json:"name" binding:"required,min=2,max=50"`
	Surname         string  `json:"surname" binding:"required,min=2,max=50"`
	Phone           *string `json:"phone" binding:"omitempty,phone"`
	Role            *int    `json:"role" binding:"omitempty,oneof=0 1 2"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest representa a troca de tokens
type RefreshTokenRequest struct {
	AccessToken  string `json:"accessToken" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RevokeTokenRequest representa o logout
type RevokeTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest pede um link de redefinição de senha
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest redefine a senha com o token recebido por email
type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,complex_password"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// AuthResponse é a resposta de login, cadastro e refresh
type AuthResponse struct {
	Success            bool          `json:"success"`
	Message            string        `json:"message"`
	AccessToken        string        `json:"accessToken,omitempty"`
	RefreshToken       string        `json:"refreshToken,omitempty"`
	AccessTokenExpiry  *time.Time    `json:"accessTokenExpiry,omitempty"`
	RefreshTokenExpiry *time.Time    `json:"refreshTokenExpiry,omitempty"`
	User               *UserResponse `json:"user,omitempty"`
}

// ToAuthResponse converte o resultado do AuthService
func ToAuthResponse(result *services.AuthResult, message string) AuthResponse {
	user := ToUserResponse(result.User)
	return AuthResponse{
		Success:            true,
		Message:            message,
		AccessToken:        result.AccessToken,
		RefreshToken:       result.RefreshToken,
		AccessTokenExpiry:  &result.AccessTokenExpiry,
		RefreshTokenExpiry: &result.RefreshTokenExpiry,
		User:               &user,
	}
}

// AuthFailure cria uma resposta de falha de autenticação
func AuthFailure(message string) AuthResponse {
	return AuthResponse{Success: false, Message: message}
}
