package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// AuthHandler lida com login, cadastro e ciclo de vida dos tokens
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register cadastra um usuário
// @Summary Cadastra um usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.AuthResponse
// @Failure 409 {object} dto.AuthResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailure(c, err)
		return
	}

	input := services.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Surname:     req.Surname,
		PhoneNumber: req.Phone,
	}
	if req.Role != nil {
		role := entities.Role(*req.Role)
		input.Role = &role
	}

	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.failure(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(result, dto.T(c, "auth.register_success")))
}

// Login autentica com email e senha
// @Summary Autentica um usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.AuthResponse
// @Failure 401 {object} dto.AuthResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailure(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.failure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result, dto.T(c, "auth.login_success")))
}

// Refresh troca o refresh token por um novo par
// @Summary Renova os tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Tokens atuais"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.AuthResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailure(c, err)
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		h.failure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result, dto.T(c, "auth.refresh_success")))
}

// Logout revoga o refresh token
// @Summary Revoga um refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RevokeTokenRequest true "Refresh token"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RevokeTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailure(c, err)
		return
	}

	if err := h.authService.Revoke(c.Request.Context(), req.RefreshToken); err != nil {
		h.failure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: dto.T(c, "auth.logout_success")})
}

// Me retorna o usuário autenticado
// @Summary Usuário autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), a, a.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ForgotPassword envia o link de redefinição de senha
// @Summary Solicita redefinição de senha
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailure(c, err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.failure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: dto.T(c, "auth.forgot_password_sent")})
}

// ResetPassword redefine a senha com o token recebido por email
// @Summary Redefine a senha
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token e nova senha"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.AuthResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailure(c, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		h.failure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: dto.T(c, "auth.password_reset_success")})
}

func (h *AuthHandler) bindFailure(c *gin.Context, err error) {
	message := dto.T(c, "error.validation.detail")
	if fields := dto.TranslateBindingError(c, err); len(fields) > 0 {
		message = fields[0].Field + ": " + fields[0].Message
	}
	c.JSON(http.StatusBadRequest, dto.AuthFailure(message))
}

// failure responde no formato AuthResponse, usando o mesmo status do mapeamento RFC 7807
func (h *AuthHandler) failure(c *gin.Context, err error) {
	problem := errorResponse(c, err)

	message := problem.Detail
	var validationErr *errors.ValidationError
	if errs.As(err, &validationErr) && len(problem.Errors) > 0 {
		message = problem.Errors[0].Field + ": " + problem.Errors[0].Message
	}

	c.JSON(problem.Status, dto.AuthFailure(message))
}
