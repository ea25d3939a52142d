package dto

import "sundar_marbles/internal/repository"

// ListResponse is the shared pagination envelope for public listings.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}

func NewListResponse(items interface{}, total, page, perPage int) ListResponse {
	// The repositories clamp pagination with the same rule, so the
	// envelope reports the effective values, not the raw query input.
	page, perPage = repository.NormalizePage(page, perPage)

	totalPages := total / perPage
	if total%perPage > 0 {
		totalPages++
	}

	return ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
