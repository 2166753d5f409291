package service

import "github.com/evaldesk/evaldesk/models"

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// paginate slices items into the requested page and wraps it in the list
// envelope. Page numbers are 1-based; out-of-range values are clamped rather
// than rejected, so a page past the end yields an empty item list with the
// correct totals.
func paginate[T any](items []T, page, size int) models.Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	total := len(items)
	pages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return models.Page[T]{
		Items: items[start:end],
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}
