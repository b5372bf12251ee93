// Package pagination parses page parameters and applies them to gorm queries.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a page of objects with metadata. Objects keeps the
// success/objects/errors envelope the API uses everywhere else.
type PageResponse[T any] struct {
	Success    bool     `json:"success"`
	Objects    []T      `json:"objects"`
	Errors     []string `json:"errors"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalItems int64    `json:"total_items"`
	TotalPages int      `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given objects and total count.
func NewPageResponse[T any](objects []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	if objects == nil {
		objects = []T{}
	}
	return PageResponse[T]{
		Success:    true,
		Objects:    objects,
		Errors:     []string{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given
// page request, newest records first.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Offset(req.Offset()).Limit(req.PageSize)
	}
}
