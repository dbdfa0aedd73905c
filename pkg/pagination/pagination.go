package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 25
	// MaxPageSize caps how many rows any listing query can request.
	MaxPageSize = 100
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps the page and page size into their allowed ranges.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Limit returns the row limit for the normalized params.
func (p Params) Limit() int {
	return p.Normalize().PageSize
}

// Meta describes one page of a listing response.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
}

// NewMeta builds response metadata from the normalized params and row count.
func NewMeta(p Params, total int64) Meta {
	n := p.Normalize()
	return Meta{
		Page:       n.Page,
		PageSize:   n.PageSize,
		TotalCount: total,
	}
}
