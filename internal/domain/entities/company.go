package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

// MaxCompanyDescriptionLength limita a descrição da empresa
const MaxCompanyDescriptionLength = 5000

// Company é uma empresa mantida por um usuário Employer
type Company struct {
	ID          string
	OwnerUserID string
	Name        string
	Description *string
	Website     *string
	LogoURL     *string
	Location    *string
	CreatedAt   time.Time
}

// CompanyDetails agrupa os campos editáveis de uma empresa
type CompanyDetails struct {
	Name        string
	Description *string
	Website     *string
	Location    *string
}

// NewCompany cria uma empresa validada
func NewCompany(ownerUserID string, details CompanyDetails, logoURL *string) (*Company, error) {
	c := &Company{OwnerUserID: ownerUserID, CreatedAt: time.Now().UTC()}
	if err := c.Update(details); err != nil {
		return nil, err
	}
	if err := c.UpdateLogoURL(logoURL); err != nil {
		return nil, err
	}
	return c, nil
}

// Update valida e aplica os detalhes. Em caso de erro nada é alterado.
func (c *Company) Update(details CompanyDetails) error {
	name := strings.TrimSpace(details.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return domainerrors.NewValidationError("name", "validation.length_between", map[string]interface{}{"Min": 2, "Max": 100})
	}

	description := trimmedOrNil(details.Description)
	if description != nil && utf8.RuneCountInString(*description) > MaxCompanyDescriptionLength {
		return domainerrors.NewValidationError("description", "validation.max_length", map[string]interface{}{"Max": MaxCompanyDescriptionLength})
	}

	var website *string
	if w := trimmedOrNil(details.Website); w != nil {
		normalized := normalizeWebsite(*w)
		if !isAbsoluteHTTPURL(normalized) {
			return domainerrors.NewValidationError("website", "validation.url")
		}
		website = &normalized
	}

	c.Name = name
	c.Description = description
	c.Website = website
	c.Location = trimmedOrNil(details.Location)
	return nil
}

// UpdateLogoURL troca o logo; nil remove
func (c *Company) UpdateLogoURL(logoURL *string) error {
	logo := trimmedOrNil(logoURL)
	if logo != nil && !isAbsoluteHTTPURL(*logo) {
		return domainerrors.NewValidationError("logoUrl", "validation.url")
	}
	c.LogoURL = logo
	return nil
}

// IsOwnedBy verifica se o usuário é dono da empresa
func (c *Company) IsOwnedBy(userID string) bool {
	return c.OwnerUserID == userID
}

// CanBeManagedBy verifica se o ator pode alterar a empresa
func (c *Company) CanBeManagedBy(actor Actor) bool {
	return actor.IsAdmin() || (actor.Can(PermissionCompaniesWrite) && c.IsOwnedBy(actor.UserID))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
