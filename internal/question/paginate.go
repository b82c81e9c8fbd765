package question

import (
	"strconv"
	"strings"
)

// Paginate returns items[(page-1)*size : page*size] clipped to the slice
// bounds. A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	// Compare page counts before multiplying so huge pages cannot overflow.
	pages := len(items) / size
	if len(items)%size != 0 {
		pages++
	}
	if page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * size
	end := start + min(size, len(items)-start)
	return items[start:end:end]
}

// ParsePage reads a page query value. Missing or unparsable values mean page
// 1; explicit values below 1 are rejected.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1, nil
	}
	if page < 1 {
		return 0, badRequest("parse page", "page", "page must be 1 or greater", nil)
	}
	return page, nil
}
