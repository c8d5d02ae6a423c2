package repositories

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// Filter is a raw WHERE clause plus its bind arguments. Column references
// should use the model's table alias ("t.is_active = ?") so they stay
// unambiguous when relations are joined in.
type Filter struct {
	Clause string
	Args   []any
}

func Where(clause string, args ...any) *Filter {
	return &Filter{Clause: clause, Args: args}
}

// Page wraps one page of entities together with the total row count, so
// callers can render pagination without a second query.
type Page[T any] struct {
	Items      []*T `json:"items"`
	TotalCount int  `json:"totalCount"`
	PageNumber int  `json:"pageNumber"`
	PageSize   int  `json:"pageSize"`
}

func (p *Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	pages := p.TotalCount / p.PageSize
	if p.TotalCount%p.PageSize != 0 {
		pages++
	}
	return pages
}

// clampPaging normalizes caller-supplied paging params: page numbers below 1
// become 1 and non-positive sizes fall back to the default of 10.
func clampPaging(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = defaultPageNumber
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return pageNumber, pageSize
}
