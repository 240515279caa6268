package services

// DefaultPageSize matches the venue list page length.
const DefaultPageSize = 4

// Pagination describes one slice of a paginated collection. Pages are
// 1-based.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// clampPage folds an out-of-range page number onto the nearest valid
// page instead of erroring. An empty collection still has page 1.
func clampPage(page int, total int64, pageSize int) (int, int) {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}
