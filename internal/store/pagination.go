package store

import "strconv"

// PageRequest is a clamped page/limit pair. Zero, negative, or
// non-numeric client input falls back to page 1 and the route's default
// limit.
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePage builds a PageRequest from raw query values.
func ParsePage(page, limit string, defaultLimit int) PageRequest {
	p := PageRequest{Page: 1, Limit: defaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n >= 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	return p
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the shared pagination envelope: totals are always scoped
// to the active filter.
type PageInfo struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPageInfo derives the envelope from a filtered total.
func NewPageInfo(total int64, p PageRequest) PageInfo {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return PageInfo{
		Total:       total,
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1 && total > 0,
	}
}
