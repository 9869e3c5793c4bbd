// Package query implements the list pipeline shared by every collection
// endpoint: filter, then search, then sort, then paginate.
//
// The pipeline is pure. It never mutates the input slice; sorting happens on a
// shallow copy and is stable, so ties keep their insertion order.
package query

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 10

	// NoLimit returns the whole matched set in one page.
	NoLimit = math.MaxInt
)

// Direction is a sort direction as it appears in request paths.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Spec is the per-request query. Zero values for Filter, Search and SortField
// mean the stage is skipped.
type Spec struct {
	Filter    string
	Search    string
	SortField string
	SortDir   Direction
	Skip      int
	Limit     int
}

// Schema tells the pipeline how to read the fields of T. A nil Filter or
// Search turns that stage into a pass-through for the collection; sort keys
// not present in Sort are ignored.
type Schema[T any] struct {
	Filter func(T) string
	Search func(T) string
	Sort   map[string]func(T) float64
}

// Page is the list envelope returned to callers.
type Page[T any] struct {
	Results      []T `json:"results"`
	TotalRecords int `json:"totalRecords"`
}

// Run applies spec to items. TotalRecords counts the records that survived
// filter and search, before pagination.
func Run[T any](items []T, schema Schema[T], spec Spec) Page[T] {
	matched := make([]T, 0, len(items))
	needle := strings.ToLower(spec.Search)
	for _, item := range items {
		if spec.Filter != "" && schema.Filter != nil && schema.Filter(item) != spec.Filter {
			continue
		}
		if needle != "" && schema.Search != nil && !strings.Contains(strings.ToLower(schema.Search(item)), needle) {
			continue
		}
		matched = append(matched, item)
	}

	sortStable(matched, schema, spec)

	return Page[T]{
		Results:      paginate(matched, spec.Skip, spec.Limit),
		TotalRecords: len(matched),
	}
}

func sortStable[T any](items []T, schema Schema[T], spec Spec) {
	key, ok := schema.Sort[spec.SortField]
	if !ok {
		return
	}
	switch spec.SortDir {
	case Ascending:
		slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	case Descending:
		slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(key(b), key(a)) })
	}
}

// paginate returns items[skip : skip+limit] clamped to the slice bounds.
// Negative inputs fall back to the defaults.
func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit < 0 {
		limit = DefaultLimit
	}
	if skip >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit < end-skip {
		end = skip + limit
	}
	return items[skip:end]
}
