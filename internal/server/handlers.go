package server

import (
	"fmt"
	"net/http"
	"time"

	"mockshop/internal/query"
)

// Listing slower than this is logged and counted; generation over large
// counts legitimately takes longer and is excluded.
const slowQueryThreshold = 300 * time.Millisecond

type seedResponse struct {
	Users    int    `json:"users"`
	Orders   int    `json:"orders"`
	Products int    `json:"products"`
	Message  string `json:"message"`
	Duration string `json:"duration"`
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	counts, err := s.seedParams(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	res, err := s.store.Regenerate(counts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	elapsed := time.Since(start)

	s.metrics.SeedTotal.Inc()
	s.metrics.GenerateDuration.Observe(elapsed.Seconds())
	s.metrics.ObserveDataset(res.Users, res.Orders, res.Products)
	s.log.Info("dataset generated",
		"users", res.Users, "orders", res.Orders, "products", res.Products,
		"duration", elapsed)

	s.writeJSON(w, http.StatusOK, seedResponse{
		Users:    res.Users,
		Orders:   res.Orders,
		Products: res.Products,
		Message:  "dataset generated",
		Duration: fmt.Sprintf("%d ms", elapsed.Milliseconds()),
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	params, err := s.listParams(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	page, err := query.ListUsers(s.store.UserRows(), params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	elapsed := time.Since(start)

	s.metrics.UserListDuration.Observe(elapsed.Seconds())
	if elapsed > slowQueryThreshold {
		s.metrics.SlowQueries.Inc()
		s.log.Warn("slow user listing",
			"duration", elapsed, "page", params.Page, "search", params.Search)
	}

	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	page, pageSize, err := s.pageParams(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	res, err := query.ListUserOrders(s.store, userID, page, pageSize)
	if err != nil {
		s.writeError(w, err)
		return
	}
	elapsed := time.Since(start)

	s.metrics.OrderListDuration.Observe(elapsed.Seconds())
	if elapsed > slowQueryThreshold {
		s.metrics.SlowQueries.Inc()
		s.log.Warn("slow order listing", "duration", elapsed, "userId", userID)
	}

	s.writeJSON(w, http.StatusOK, res)
}
