package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista usuários
// @Summary Lista usuários (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query int false "Papel (0 Admin, 1 Employer, 2 JobSeeker)"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.UserResponse]
// @Failure 403 {object} dto.ErrorResponse
// @Router /user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	filters := repositories.UserFilters{Pagination: query.ToPagination()}
	if query.Role != nil {
		role := entities.Role(*query.Role)
		filters.Role = &role
	}

	page, err := h.userService.ListUsers(c.Request.Context(), a, filters)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPage(page))
}

// GetUser busca um usuário por ID
// @Summary Busca um usuário
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), a, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser atualiza o perfil
// @Summary Atualiza o perfil de um usuário
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param request body dto.UpdateUserRequest true "Perfil"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /user/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), a, id, services.UpdateProfileInput{
		Name:        req.Name,
		Surname:     req.Surname,
		PhoneNumber: req.Phone,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangeEmail troca o email
// @Summary Troca o email de um usuário
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param request body dto.ChangeEmailRequest true "Novo email"
// @Success 200 {object} dto.UserResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /user/{id}/email [patch]
func (h *UserHandler) ChangeEmail(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	user, err := h.userService.ChangeEmail(c.Request.Context(), a, id, req.Email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword troca a senha
// @Summary Troca a senha de um usuário
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param request body dto.ChangePasswordRequest true "Senhas"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Router /user/{id}/password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), a, id, services.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeRole altera o papel
// @Summary Altera o papel de um usuário (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param request body dto.ChangeRoleRequest true "Papel"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /user/{id}/role [patch]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	user, err := h.userService.ChangeRole(c.Request.Context(), a, id, entities.Role(*req.Role))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário
// @Summary Remove um usuário
// @Tags users
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), a, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
