package query

import "math"

// Pagination reports where a page sits inside a filtered collection. The
// counts always describe the pre-pagination, post-filter collection.
type Pagination struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	TotalItems   int  `json:"total_items"`
	ItemsPerPage int  `json:"items_per_page"`
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
}

// Paginate slices a one-indexed page out of items. total_pages is at least
// 1 even for an empty collection so UI page indicators never read "of 0".
// An out-of-range page yields an empty slice, not an error. Callers are
// expected to have validated page >= 1 and limit >= 1 at the boundary.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	totalItems := len(items)
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > totalItems {
		start = totalItems
	}
	end := start + limit
	if end > totalItems {
		end = totalItems
	}

	return items[start:end], Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrevious:  page > 1,
	}
}
