// Package query reads list parameters from URL query strings.
package query

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page reads the "page" parameter. Absent, malformed or non-positive
// values fall back to DefaultPage.
func Page(r *http.Request) int {
	return bounded(r, "page", DefaultPage, 0)
}

// PageSize reads the "page_size" parameter. Values outside
// [1, MaxPageSize] fall back to DefaultPageSize.
func PageSize(r *http.Request) int {
	return bounded(r, "page_size", DefaultPageSize, MaxPageSize)
}

func bounded(r *http.Request, key string, fallback, max int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 1 || (max > 0 && n > max) {
		return fallback
	}

	return n
}
