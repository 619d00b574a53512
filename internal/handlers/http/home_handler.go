package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// HomeHandler atende as consultas públicas da página inicial
type HomeHandler struct {
	homeService *services.HomeService
}

// NewHomeHandler cria um novo HomeHandler
func NewHomeHandler(homeService *services.HomeService) *HomeHandler {
	return &HomeHandler{
		homeService: homeService,
	}
}

// Overview retorna vagas recentes, destaques, totais e categorias
// @Summary Dados da página inicial
// @Tags home
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router /home [get]
func (h *HomeHandler) Overview(c *gin.Context) {
	overview, err := h.homeService.Overview(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHomeResponse(overview))
}

// SearchJobs pesquisa somente vagas abertas
// @Summary Pesquisa vagas abertas
// @Tags home
// @Produce json
// @Param q query string false "Texto no título ou descrição"
// @Param location query string false "Localização"
// @Param categoryId query string false "Categoria"
// @Param jobType query int false "Tipo"
// @Param isRemote query bool false "Remota"
// @Param minSalary query number false "Salário mínimo"
// @Param maxSalary query number false "Salário máximo"
// @Param sort query string false "newest ou salary"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.PaginatedResponse[dto.JobSummaryResponse]
// @Router /home/jobs [get]
func (h *HomeHandler) SearchJobs(c *gin.Context) {
	var query dto.JobSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	page, err := h.homeService.SearchJobs(c.Request.Context(), query.ToFilter())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobSummaryPage(page))
}

// FeaturedJobs retorna as vagas em destaque
// @Summary Vagas em destaque
// @Tags home
// @Produce json
// @Param limit query int false "Quantidade"
// @Success 200 {array} dto.JobSummaryResponse
// @Router /home/featured-jobs [get]
func (h *HomeHandler) FeaturedJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.FeaturedJobsLimit)))

	jobs, err := h.homeService.FeaturedJobs(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobSummaryResponses(jobs))
}
