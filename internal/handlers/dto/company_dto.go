package dto

import (
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// CompanyRequest representa a criação ou atualização de uma empresa.
// OwnerUserID só é usado quando um admin cria a empresa.
type CompanyRequest struct {
	OwnerUserID string  `json:"ownerUserId" binding:"omitempty,uuid"`
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Website     *string `json:"website" binding:"omitempty,max=500"`
	LogoURL     *string `json:"logoUrl" binding:"omitempty,url,max=500"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
}

// Details extrai os campos editáveis
func (r CompanyRequest) Details() entities.CompanyDetails {
	return entities.CompanyDetails{
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		Location:    r.Location,
	}
}

// UpdateLogoRequest troca o logo; vazio remove
type UpdateLogoRequest struct {
	LogoURL *string `json:"logoUrl" binding:"omitempty,url,max=500"`
}

// ListCompaniesQuery contém os filtros da listagem de empresas
type ListCompaniesQuery struct {
	Name     string `form:"name"`
	Location string `form:"location"`
	PaginationQuery
}

// CompanyResponse representa a resposta de uma empresa
type CompanyResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"ownerUserId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	LogoURL     *string   `json:"logoUrl,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCompanyResponse converte uma entidade Company
func ToCompanyResponse(company *entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:          company.ID,
		OwnerUserID: company.OwnerUserID,
		Name:        company.Name,
		Description: company.Description,
		Website:     company.Website,
		LogoURL:     company.LogoURL,
		Location:    company.Location,
		CreatedAt:   company.CreatedAt,
	}
}

// ToCompanyPage converte uma página de empresas
func ToCompanyPage(page services.Page[*entities.Company]) PaginatedResponse[CompanyResponse] {
	items := make([]CompanyResponse, len(page.Items))
	for i, company := range page.Items {
		items[i] = ToCompanyResponse(company)
	}
	return toPaginated(page, items)
}
