// Package query serves filtered, sorted, paginated views over dataset
// snapshots. It never mutates store state: the slices it receives are
// treated as read-only and copied before sorting.
package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mockshop/internal/apperr"
	"mockshop/internal/model"
)

// SortField selects the user-listing sort key.
type SortField string

const (
	SortByName       SortField = "name"
	SortByEmail      SortField = "email"
	SortByCreatedAt  SortField = "createdAt"
	SortByOrderTotal SortField = "orderTotal"
)

// SortFields enumerates every valid SortField value.
var SortFields = []SortField{SortByName, SortByEmail, SortByCreatedAt, SortByOrderTotal}

// SortDir is the sort direction.
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// ListParams are the validated parameters for a user listing. Page is
// 1-based; PageSize is positive. Validation happens at the HTTP boundary.
type ListParams struct {
	Search   string
	SortBy   SortField
	Dir      SortDir
	Page     int
	PageSize int
}

// ListUsers filters rows by case-insensitive substring on name/email, sorts
// with a stable full-collection sort, and slices out the requested page.
// rows is a store snapshot and is left untouched.
func ListUsers(rows []model.UserRow, p ListParams) (model.Page[model.UserRow], error) {
	cmp, err := comparator(p.SortBy)
	if err != nil {
		return model.Page[model.UserRow]{}, err
	}

	var filtered []model.UserRow
	if p.Search == "" {
		filtered = slices.Clone(rows)
	} else {
		needle := strings.ToLower(p.Search)
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.Name), needle) ||
				strings.Contains(strings.ToLower(row.Email), needle) {
				filtered = append(filtered, row)
			}
		}
	}

	if p.Dir == Desc {
		inner := cmp
		cmp = func(a, b model.UserRow) int { return -inner(a, b) }
	}
	slices.SortStableFunc(filtered, cmp)

	return paginate(filtered, p.Page, p.PageSize), nil
}

// comparator maps each sortable field to its typed comparison: collation
// for strings, time value for createdAt, numeric for orderTotal. Adding a
// SortField without a branch here is a visible error to callers.
func comparator(field SortField) (func(a, b model.UserRow) int, error) {
	switch field {
	case SortByName:
		col := newCollator()
		return func(a, b model.UserRow) int { return col.CompareString(a.Name, b.Name) }, nil
	case SortByEmail:
		col := newCollator()
		return func(a, b model.UserRow) int { return col.CompareString(a.Email, b.Email) }, nil
	case SortByCreatedAt:
		return func(a, b model.UserRow) int { return a.CreatedAt.Compare(b.CreatedAt) }, nil
	case SortByOrderTotal:
		return func(a, b model.UserRow) int {
			switch {
			case a.OrderTotal < b.OrderTotal:
				return -1
			case a.OrderTotal > b.OrderTotal:
				return 1
			default:
				return 0
			}
		}, nil
	default:
		return nil, apperr.InvalidParameter("unsupported sort field %q", field)
	}
}

// A Collator is not safe for concurrent use, so each listing call gets its
// own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// paginate clamps the 1-based page window to the available length.
// Out-of-range pages yield an empty item list, not an error.
func paginate[T any](items []T, page, pageSize int) model.Page[T] {
	total := len(items)
	totalPages := 0
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
	}

	pg := model.Page[T]{
		Items:       []T{},
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	// Deciding out-of-range against totalPages before computing the window
	// keeps the start offset from overflowing on huge page values.
	if page > totalPages {
		return pg
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	if window := items[start:end]; window != nil {
		pg.Items = window
	}
	return pg
}
