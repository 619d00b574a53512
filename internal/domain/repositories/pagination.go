package repositories

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination define página (começa em 1) e itens por página
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize aplica os limites padrão (default: 20, max: 100)
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset retorna o deslocamento da página normalizada
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}
