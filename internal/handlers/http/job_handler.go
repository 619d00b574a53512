package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// JobHandler lida com requisições HTTP relacionadas a vagas
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler cria um novo JobHandler
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// CreateJob publica uma vaga
// @Summary Cria uma vaga
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JobRequest true "Dados da vaga"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /job [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	if req.CompanyID == "" {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{{
			Field:   "companyId",
			Message: dto.T(c, "validation.required"),
			Tag:     "required",
		}}))
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), a, req.CompanyID, req.Details())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// SearchJobs pesquisa vagas
// @Summary Pesquisa vagas
// @Tags jobs
// @Produce json
// @Param q query string false "Texto no título ou descrição"
// @Param location query string false "Localização"
// @Param companyId query string false "Empresa"
// @Param categoryId query string false "Categoria"
// @Param jobType query int false "Tipo (0 FullTime .. 4 Temporary)"
// @Param isRemote query bool false "Remota"
// @Param minSalary query number false "Salário mínimo"
// @Param maxSalary query number false "Salário máximo"
// @Param tag query string false "Tag"
// @Param isActive query bool false "Ativa"
// @Param sort query string false "newest ou salary"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.JobResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /job [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var query dto.JobSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	page, err := h.jobService.SearchJobs(c.Request.Context(), query.ToFilter())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobPage(page))
}

// ListActive lista as vagas abertas
// @Summary Lista vagas abertas
// @Tags jobs
// @Produce json
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.JobResponse]
// @Router /job/active [get]
func (h *JobHandler) ListActive(c *gin.Context) {
	h.list(c, h.jobService.ListActive)
}

// GetJob busca uma vaga
// @Summary Busca uma vaga
// @Tags jobs
// @Produce json
// @Param id path string true "ID da vaga"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /job/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.respond(c)(h.jobService.GetJob(c.Request.Context(), id))
}

// ListByCompany lista as vagas de uma empresa
// @Summary Lista vagas de uma empresa
// @Tags jobs
// @Produce json
// @Param id path string true "ID da empresa"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.JobResponse]
// @Router /job/company/{id} [get]
func (h *JobHandler) ListByCompany(c *gin.Context) {
	h.listByParent(c, h.jobService.ListByCompany)
}

// ListByCategory lista as vagas de uma categoria
// @Summary Lista vagas de uma categoria
// @Tags jobs
// @Produce json
// @Param id path string true "ID da categoria"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.JobResponse]
// @Router /job/category/{id} [get]
func (h *JobHandler) ListByCategory(c *gin.Context) {
	h.listByParent(c, h.jobService.ListByCategory)
}

// UpdateJob atualiza uma vaga
// @Summary Atualiza uma vaga
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da vaga"
// @Param request body dto.JobRequest true "Dados da vaga"
// @Success 200 {object} dto.JobResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /job/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	h.respond(c)(h.jobService.UpdateJob(c.Request.Context(), a, id, req.Details()))
}

// ActivateJob reabre uma vaga
// @Summary Ativa uma vaga
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da vaga"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /job/{id}/activate [patch]
func (h *JobHandler) ActivateJob(c *gin.Context) {
	h.toggle(c, h.jobService.ActivateJob)
}

// DeactivateJob fecha uma vaga para candidaturas
// @Summary Desativa uma vaga
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da vaga"
// @Success 200 {object} dto.JobResponse
// @Router /job/{id}/deactivate [patch]
func (h *JobHandler) DeactivateJob(c *gin.Context) {
	h.toggle(c, h.jobService.DeactivateJob)
}

// ExtendJob prorroga o prazo da vaga
// @Summary Prorroga uma vaga
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da vaga"
// @Param request body dto.ExtendJobRequest true "Dias"
// @Success 200 {object} dto.JobResponse
// @Router /job/{id}/extend [patch]
func (h *JobHandler) ExtendJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.ExtendJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	h.respond(c)(h.jobService.ExtendJob(c.Request.Context(), a, id, req.Days))
}

// DeleteJob remove uma vaga
// @Summary Remove uma vaga
// @Tags jobs
// @Security BearerAuth
// @Param id path string true "ID da vaga"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /job/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), a, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *JobHandler) list(c *gin.Context, fetch func(ctx context.Context, pagination repositories.Pagination) (services.Page[*entities.Job], error)) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	page, err := fetch(c.Request.Context(), query.ToPagination())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobPage(page))
}

func (h *JobHandler) listByParent(c *gin.Context, fetch func(ctx context.Context, parentID string, pagination repositories.Pagination) (services.Page[*entities.Job], error)) {
	parentID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.list(c, func(ctx context.Context, pagination repositories.Pagination) (services.Page[*entities.Job], error) {
		return fetch(ctx, parentID, pagination)
	})
}

func (h *JobHandler) toggle(c *gin.Context, change func(ctx context.Context, actor entities.Actor, id string) (*entities.Job, error)) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.respond(c)(change(c.Request.Context(), a, id))
}

func (h *JobHandler) respond(c *gin.Context) func(*entities.Job, error) {
	return func(job *entities.Job, err error) {
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToJobResponse(job))
	}
}
