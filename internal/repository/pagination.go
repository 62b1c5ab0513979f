package repository

// Page represents a simple limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries one window of items plus the metadata clients need to walk the rest.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPageResult computes page metadata for an already windowed slice of a scan of size total.
// A non-positive limit yields page = totalPages = 1.
func NewPageResult[T any](items []T, total int, p Page) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	res := PageResult[T]{Items: items, Total: total, Limit: p.Limit, Page: 1, TotalPages: 1}
	if p.Limit > 0 {
		offset := max(p.Offset, 0)
		res.Page = offset/p.Limit + 1
		res.TotalPages = (total + p.Limit - 1) / p.Limit
	}
	return res
}

// Paginate windows a full scan to [offset, offset+limit) and wraps it with metadata.
func Paginate[T any](all []T, p Page) PageResult[T] {
	return NewPageResult(Window(all, p), len(all), p)
}

// Window returns the [offset, offset+limit) slice of all, clamped to its bounds.
func Window[T any](all []T, p Page) []T {
	offset := max(p.Offset, 0)
	if offset >= len(all) || p.Limit <= 0 {
		return []T{}
	}
	end := min(offset+p.Limit, len(all))
	out := make([]T, end-offset)
	copy(out, all[offset:end])
	return out
}
