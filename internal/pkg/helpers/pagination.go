package helpers

import (
	"math"

	"github.com/sarah-brisson/keyhook-code-test/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// OffsetLimit converts a 1-based page spec into SQL offset/limit values.
func OffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// TotalPages computes ceil(totalItems / size) over the filtered set.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// NewListMeta builds the pagination meta for a list response. The current
// page is the resolved (post-default) requested page, even when it lies
// beyond the last page and the data slice is empty.
func NewListMeta(totalItems int64, page, size int) dto.ListMeta {
	if page < 1 {
		page = DefaultPage
	}
	return dto.ListMeta{
		TotalPages:  TotalPages(totalItems, size),
		CurrentPage: page,
	}
}
