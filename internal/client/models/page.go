package models

// Page is the server's paged-list envelope for any listable resource.
// Page numbers are 1-based; TotalPages is server-reported and drives the
// infinite-feed "has more" decision.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// HasNext reports whether the server holds pages beyond this one.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}
