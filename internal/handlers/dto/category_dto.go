package dto

import (
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
)

// CategoryRequest representa a criação ou renomeação de uma categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100,category_name"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCategoryResponse converte uma entidade Category
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
	}
}

// ToCategoryResponses converte uma lista de categorias
func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
