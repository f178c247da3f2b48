// Package listview implements the filter, sort and paginate pipeline shared by every dashboard list.
package listview

// DefaultPageSize is used when no page size preference is stored
const DefaultPageSize = 8

// Page is the visible slice of a filtered and sorted list
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// TotalPages is never less than one, so an empty list still has a page to show
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	return max(1, pages)
}

// ClampPage corrects out of range pages instead of failing
func ClampPage(page, total, pageSize int) int {
	return min(max(1, page), TotalPages(total, pageSize))
}

// Paginate returns the clamped page of items
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	safePage := ClampPage(page, len(items), pageSize)
	totalPages := TotalPages(len(items), pageSize)

	start := (safePage - 1) * pageSize
	end := min(start+pageSize, len(items))
	pageItems := make([]T, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	return Page[T]{
		Items:      pageItems,
		Page:       safePage,
		TotalPages: totalPages,
		PageSize:   pageSize,
		Total:      len(items),
		HasNext:    safePage < totalPages,
		HasPrev:    safePage > 1,
	}
}
