package mockdata

import (
	"fmt"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// paginate slices the full collection into one page and fills the
// count/next/previous metadata the backend produces for list endpoints.
func paginate[T any](all []T, page, pageSize int, basePath string) internal.Page[T] {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	results := make([]T, end-start)
	copy(results, all[start:end])

	out := internal.Page[T]{
		Count:   len(all),
		Results: results,
	}
	if end < len(all) {
		next := fmt.Sprintf("%s?page=%d&page_size=%d", basePath, page+1, pageSize)
		out.Next = &next
	}
	if page > 1 {
		prev := fmt.Sprintf("%s?page=%d&page_size=%d", basePath, page-1, pageSize)
		out.Previous = &prev
	}
	return out
}

// nextID assigns max(existing ids) + 1, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

// inRange reports whether an ISO date falls inside [start, end] inclusive.
// YYYY-MM-DD strings compare correctly as plain strings.
func inRange(date, start, end string) bool {
	return date >= start && date <= end
}
