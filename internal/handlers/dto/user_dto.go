package dto

import (
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// UpdateUserRequest representa a requisição para atualizar o perfil
type UpdateUserRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=50"`
	Surname string  `json:"surname" binding:"required,min=2,max=50"`
	Phone   *string `json:"phone" binding:"omitempty,phone"`
}

// ChangeEmailRequest representa a troca de email
type ChangeEmailRequest struct {
	Email string `json:"email" binding:"required,email,max=100"`
}

// ChangePasswordRequest representa a troca de senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"required,complex_password"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// ChangeRoleRequest representa a troca de papel
type ChangeRoleRequest struct {
	Role *int `json:"role" binding:"required,oneof=0 1 2"`
}

// ListUsersQuery contém os filtros da listagem de usuários
type ListUsersQuery struct {
	Role *int `form:"role" binding:"omitempty,oneof=0 1 2"`
	PaginationQuery
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Role             int       `json:"role"`
	RoleName         string    `json:"roleName"`
	Name             string    `json:"name"`
	Surname          string    `json:"surname"`
	Phone            *string   `json:"phone,omitempty"`
	IsEmailConfirmed bool      `json:"isEmailConfirmed"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email.String(),
		Role:             int(user.Role),
		RoleName:         user.Role.String(),
		Name:             user.Name,
		Surname:          user.Surname,
		Phone:            user.PhoneNumber,
		IsEmailConfirmed: user.IsEmailConfirmed,
		CreatedAt:        user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToUserPage converte uma página de usuários
func ToUserPage(page services.Page[*entities.User]) PaginatedResponse[UserResponse] {
	return toPaginated(page, ToUserResponses(page.Items))
}
