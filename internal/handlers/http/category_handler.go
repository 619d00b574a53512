package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// CategoryHandler lida com requisições HTTP relacionadas a categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories lista todas as categorias
// @Summary Lista categorias
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /category [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// GetCategory busca uma categoria por ID
// @Summary Busca uma categoria
// @Tags categories
// @Produce json
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /category/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.respond(c)(h.categoryService.GetCategory(c.Request.Context(), id))
}

// GetBySlug busca uma categoria pelo slug
// @Summary Busca uma categoria pelo slug
// @Tags categories
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /category/slug/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	h.respond(c)(h.categoryService.GetBySlug(c.Request.Context(), c.Param("slug")))
}

// GetByName busca uma categoria pelo nome exato
// @Summary Busca uma categoria pelo nome
// @Tags categories
// @Produce json
// @Param name path string true "Nome"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /category/name/{name} [get]
func (h *CategoryHandler) GetByName(c *gin.Context) {
	h.respond(c)(h.categoryService.GetByName(c.Request.Context(), c.Param("name")))
}

// SearchCategories busca categorias cujo nome contém o trecho
// @Summary Pesquisa categorias
// @Tags categories
// @Produce json
// @Param name path string true "Trecho do nome"
// @Success 200 {array} dto.CategoryResponse
// @Router /category/search/{name} [get]
func (h *CategoryHandler) SearchCategories(c *gin.Context) {
	categories, err := h.categoryService.SearchCategories(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// CreateCategory cria uma categoria
// @Summary Cria uma categoria (admin)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CategoryRequest true "Categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /category [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), a, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// UpdateCategory renomeia uma categoria
// @Summary Atualiza uma categoria (admin)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Param request body dto.CategoryRequest true "Categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /category/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	h.respond(c)(h.categoryService.UpdateCategory(c.Request.Context(), a, id, req.Name))
}

// DeleteCategory remove uma categoria sem vagas
// @Summary Remove uma categoria (admin)
// @Tags categories
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Success 204
// @Failure 409 {object} dto.ErrorResponse
// @Router /category/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), a, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) respond(c *gin.Context) func(*entities.Category, error) {
	return func(category *entities.Category, err error) {
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
	}
}
