package entities

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
)

var categoryNamePattern = regexp.MustCompile(`^[\p{L}0-9 \-]+$`)

// Category agrupa vagas por área de atuação
type Category struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}

// NewCategory cria uma categoria com slug derivado do nome
func NewCategory(name string) (*Category, error) {
	c := &Category{CreatedAt: time.Now().UTC()}
	if err := c.UpdateName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateName valida o nome e regenera o slug
func (c *Category) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if err := ValidateCategoryName(name); err != nil {
		return err
	}

	c.Name = name
	c.Slug = valueobjects.Slugify(name)
	return nil
}

// ValidateCategoryName aplica as regras de tamanho e caracteres permitidos
func ValidateCategoryName(name string) error {
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return domainerrors.NewValidationError("name", "validation.length_between", map[string]interface{}{"Min": 2, "Max": 100})
	}
	if !categoryNamePattern.MatchString(name) {
		return domainerrors.NewValidationError("name", "validation.category_name")
	}
	return nil
}
