package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// CompanyHandler lida com requisições HTTP relacionadas a empresas
type CompanyHandler struct {
	companyService *services.CompanyService
}

// NewCompanyHandler cria um novo CompanyHandler
func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompany cria uma empresa
// @Summary Cria uma empresa
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CompanyRequest true "Dados da empresa"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /company [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), a, services.CreateCompanyInput{
		OwnerUserID: req.OwnerUserID,
		Details:     req.Details(),
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// ListCompanies lista empresas
// @Summary Lista empresas
// @Tags companies
// @Produce json
// @Param name query string false "Nome contém"
// @Param location query string false "Localização contém"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.CompanyResponse]
// @Router /company [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var query dto.ListCompaniesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	page, err := h.companyService.ListCompanies(c.Request.Context(), repositories.CompanyFilters{
		Name:       query.Name,
		Location:   query.Location,
		Pagination: query.ToPagination(),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyPage(page))
}

// GetCompany busca uma empresa
// @Summary Busca uma empresa
// @Tags companies
// @Produce json
// @Param id path string true "ID da empresa"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /company/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// ListByOwner lista as empresas de um usuário
// @Summary Lista empresas de um dono
// @Tags companies
// @Produce json
// @Param id path string true "ID do dono"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.CompanyResponse]
// @Router /company/owner/{id} [get]
func (h *CompanyHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	page, err := h.companyService.ListByOwner(c.Request.Context(), ownerID, query.ToPagination())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyPage(page))
}

// UpdateCompany atualiza uma empresa
// @Summary Atualiza uma empresa
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da empresa"
// @Param request body dto.CompanyRequest true "Dados da empresa"
// @Success 200 {object} dto.CompanyResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /company/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), a, id, req.Details())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// UpdateLogo troca ou remove o logo
// @Summary Atualiza o logo de uma empresa
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da empresa"
// @Param request body dto.UpdateLogoRequest true "URL do logo"
// @Success 200 {object} dto.CompanyResponse
// @Router /company/{id}/logo [patch]
func (h *CompanyHandler) UpdateLogo(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	company, err := h.companyService.UpdateLogo(c.Request.Context(), a, id, req.LogoURL)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// DeleteCompany remove uma empresa
// @Summary Remove uma empresa
// @Tags companies
// @Security BearerAuth
// @Param id path string true "ID da empresa"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /company/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), a, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
