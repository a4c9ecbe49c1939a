package models

// Pagination is the offset window for list endpoints.
type Pagination struct {
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`

	start int
	end   int
}

// Paginate clamps page into [1, totalPages] and returns the slice window.
func Paginate(totalRecords, page, pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := (totalRecords + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalRecords {
		start = totalRecords
	}
	if end > totalRecords {
		end = totalRecords
	}
	return Pagination{
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		CurrentPage:  page,
		PageSize:     pageSize,
		start:        start,
		end:          end,
	}
}

func (p Pagination) Bounds() (int, int) {
	return p.start, p.end
}

func (p Pagination) HasPrevPage() bool {
	return p.CurrentPage > 1
}

func (p Pagination) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages
}
