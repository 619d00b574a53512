package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// ApplicationHandler lida com requisições HTTP relacionadas a candidaturas
type ApplicationHandler struct {
	applicationService *services.JobApplicationService
}

// NewApplicationHandler cria um novo ApplicationHandler
func NewApplicationHandler(applicationService *services.JobApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Apply candidata o usuário autenticado a uma vaga
// @Summary Candidata-se a uma vaga
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Candidatura"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /jobapplication [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), a, services.ApplyInput{
		JobID:       req.JobID,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationResponse(application))
}

// SearchApplications pesquisa candidaturas
// @Summary Pesquisa candidaturas (admin)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId query string false "Vaga"
// @Param applicantUserId query string false "Candidato"
// @Param status query string false "Status (nome ou número)"
// @Param appliedAfter query string false "RFC 3339"
// @Param appliedBefore query string false "RFC 3339"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.ApplicationResponse]
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobapplication [get]
func (h *ApplicationHandler) SearchApplications(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var query dto.ApplicationSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	var status *entities.ApplicationStatus
	if query.Status != "" {
		parsed, ok := parseStatus(query.Status)
		if !ok {
			statusValidationError(c, "status", query.Status)
			return
		}
		status = &parsed
	}

	page, err := h.applicationService.SearchApplications(c.Request.Context(), a, query.ToFilter(status))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationPage(page))
}

// GetApplication busca uma candidatura
// @Summary Busca uma candidatura
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da candidatura"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobapplication/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.respond(c)(h.applicationService.GetApplication(c.Request.Context(), a, id))
}

// GetByJobAndApplicant busca a candidatura de um usuário a uma vaga
// @Summary Busca candidatura por vaga e candidato
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da vaga"
// @Param applicantId path string true "ID do candidato"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobapplication/job/{id}/applicant/{applicantId} [get]
func (h *ApplicationHandler) GetByJobAndApplicant(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	jobID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	applicantID, ok := uuidParam(c, "applicantId")
	if !ok {
		return
	}
	h.respond(c)(h.applicationService.GetByJobAndApplicant(c.Request.Context(), a, jobID, applicantID))
}

// ListByJob lista as candidaturas de uma vaga
// @Summary Lista candidaturas de uma vaga
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da vaga"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.ApplicationResponse]
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobapplication/job/{id} [get]
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	jobID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	h.respondPage(c)(h.applicationService.ListByJob(c.Request.Context(), a, jobID, query.ToPagination()))
}

// ListByApplicant lista as candidaturas de um usuário
// @Summary Lista candidaturas de um candidato
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do candidato"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.ApplicationResponse]
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobapplication/applicant/{id} [get]
func (h *ApplicationHandler) ListByApplicant(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	applicantID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	h.respondPage(c)(h.applicationService.ListByApplicant(c.Request.Context(), a, applicantID, query.ToPagination()))
}

// ListByStatus lista candidaturas em um status
// @Summary Lista candidaturas por status (admin)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status path string true "Status (nome ou número)"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.ApplicationResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /jobapplication/status/{status} [get]
func (h *ApplicationHandler) ListByStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	status, ok := parseStatus(c.Param("status"))
	if !ok {
		statusValidationError(c, "status", c.Param("status"))
		return
	}

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	h.respondPage(c)(h.applicationService.ListByStatus(c.Request.Context(), a, status, query.ToPagination()))
}

// ChangeStatus move a candidatura no fluxo de seleção
// @Summary Altera o status de uma candidatura
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da candidatura"
// @Param request body dto.ChangeStatusRequest true "Novo status"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobapplication/{id}/status [patch]
func (h *ApplicationHandler) ChangeStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}
	status, ok := parseStatus(req.Status)
	if !ok {
		statusValidationError(c, "status", req.Status)
		return
	}

	h.respond(c)(h.applicationService.ChangeStatus(c.Request.Context(), a, id, status))
}

// UpdateCoverLetter troca a carta de apresentação
// @Summary Atualiza a carta de apresentação
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da candidatura"
// @Param request body dto.CoverLetterRequest true "Carta"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobapplication/{id}/cover-letter [patch]
func (h *ApplicationHandler) UpdateCoverLetter(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	h.respond(c)(h.applicationService.UpdateCoverLetter(c.Request.Context(), a, id, req.CoverLetter))
}

// DeleteApplication remove uma candidatura
// @Summary Remove uma candidatura
// @Tags applications
// @Security BearerAuth
// @Param id path string true "ID da candidatura"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobapplication/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.DeleteApplication(c.Request.Context(), a, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ApplicationHandler) respond(c *gin.Context) func(*entities.JobApplication, error) {
	return func(application *entities.JobApplication, err error) {
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToApplicationResponse(application))
	}
}

func (h *ApplicationHandler) respondPage(c *gin.Context) func(services.Page[*entities.JobApplication], error) {
	return func(page services.Page[*entities.JobApplication], err error) {
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToApplicationPage(page))
	}
}
