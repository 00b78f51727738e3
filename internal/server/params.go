package server

import (
	"net/url"
	"slices"
	"strconv"

	"mockshop/internal/apperr"
	"mockshop/internal/dataset"
	"mockshop/internal/query"
)

// intParam returns the named query parameter or def when absent.
// Non-integer values are InvalidParameter.
func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.InvalidParameter("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

// seedParams applies the configured defaults; range checks beyond
// positivity are the store's concern.
func (s *Server) seedParams(q url.Values) (dataset.Counts, error) {
	users, err := intParam(q, "users", s.cfg.SeedDefaults.Users)
	if err != nil {
		return dataset.Counts{}, err
	}
	orders, err := intParam(q, "orders", s.cfg.SeedDefaults.Orders)
	if err != nil {
		return dataset.Counts{}, err
	}
	products, err := intParam(q, "products", s.cfg.SeedDefaults.Products)
	if err != nil {
		return dataset.Counts{}, err
	}
	return dataset.Counts{Users: users, Orders: orders, Products: products}, nil
}

// pageParams validates page and pageSize against the configured maximum.
func (s *Server) pageParams(q url.Values) (page, pageSize int, err error) {
	page, err = intParam(q, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		return 0, 0, apperr.InvalidParameter("page must be >= 1, got %d", page)
	}
	pageSize, err = intParam(q, "pageSize", s.cfg.Listing.PageSize)
	if err != nil {
		return 0, 0, err
	}
	if pageSize < 1 || pageSize > s.cfg.Limits.MaxPageSize {
		return 0, 0, apperr.InvalidParameter(
			"pageSize must be in 1..%d, got %d", s.cfg.Limits.MaxPageSize, pageSize)
	}
	return page, pageSize, nil
}

func (s *Server) listParams(q url.Values) (query.ListParams, error) {
	page, pageSize, err := s.pageParams(q)
	if err != nil {
		return query.ListParams{}, err
	}

	sortBy := query.SortField(q.Get("sortBy"))
	if sortBy == "" {
		sortBy = query.SortField(s.cfg.Listing.SortBy)
	}
	if !slices.Contains(query.SortFields, sortBy) {
		return query.ListParams{}, apperr.InvalidParameter(
			"sortBy must be one of %v, got %q", query.SortFields, sortBy)
	}

	dir := query.SortDir(q.Get("sortDir"))
	if dir == "" {
		dir = query.SortDir(s.cfg.Listing.SortDir)
	}
	if dir != query.Asc && dir != query.Desc {
		return query.ListParams{}, apperr.InvalidParameter("sortDir must be asc or desc, got %q", dir)
	}

	return query.ListParams{
		Search:   q.Get("search"),
		SortBy:   sortBy,
		Dir:      dir,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// userIDParam parses the {id} path segment.
func userIDParam(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperr.InvalidParameter("user id must be a positive integer, got %q", raw)
	}
	return id, nil
}
