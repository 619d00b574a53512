package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

// Clock permite controlar o tempo nos testes
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

// Page é uma página de resultados
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

// TotalPages calcula o número de páginas
func (p Page[T]) TotalPages() int {
	if p.PageSize == 0 {
		return 0
	}
	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

func newPage[T any](items []T, total int64, pagination repositories.Pagination) Page[T] {
	n := pagination.Normalize()
	return Page[T]{Items: items, Total: total, Page: n.Page, PageSize: n.PageSize}
}

func newID() string {
	return uuid.NewString()
}
