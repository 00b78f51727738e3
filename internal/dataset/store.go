package dataset

import (
	"sync"

	"mockshop/internal/apperr"
	"mockshop/internal/model"
	"mockshop/internal/rng"
)

// Limits bound one generation pass. Zero or negative means unbounded for
// that dimension.
type Limits struct {
	MaxUsers    int
	MaxOrders   int
	MaxProducts int
}

// Store owns the current generation. Reads are concurrent; Regenerate is the
// only mutation and publishes a complete new generation with a single swap,
// so a reader observes wholly the old epoch or wholly the new one.
type Store struct {
	genMu  sync.Mutex // serializes regenerations; owns src between swaps
	src    *rng.Source
	limits Limits

	mu  sync.RWMutex
	gen *generation
}

// NewStore returns an empty store. The random source is seeded once and
// advances across regenerations, matching a long-lived process reseeding
// repeatedly.
func NewStore(seed int64, limits Limits) *Store {
	return &Store{src: rng.New(seed), limits: limits}
}

// Regenerate validates c, builds a complete new generation, and swaps it in.
// On error the prior generation is untouched. Not additive: the previous
// collections and aggregate are discarded wholesale.
func (s *Store) Regenerate(c Counts) (Counts, error) {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	if err := s.validate(c); err != nil {
		return Counts{}, err
	}

	g := newGeneration(s.src, Now(), c)

	s.mu.Lock()
	s.gen = g
	s.mu.Unlock()

	return Counts{Users: len(g.users), Orders: len(g.orders), Products: len(g.products)}, nil
}

func (s *Store) validate(c Counts) error {
	if c.Users <= 0 || c.Orders <= 0 || c.Products <= 0 {
		return apperr.InvalidParameter(
			"counts must be positive: users=%d orders=%d products=%d", c.Users, c.Orders, c.Products)
	}
	if s.limits.MaxUsers > 0 && c.Users > s.limits.MaxUsers {
		return apperr.ResourceExhausted("users=%d exceeds limit %d", c.Users, s.limits.MaxUsers)
	}
	if s.limits.MaxOrders > 0 && c.Orders > s.limits.MaxOrders {
		return apperr.ResourceExhausted("orders=%d exceeds limit %d", c.Orders, s.limits.MaxOrders)
	}
	if s.limits.MaxProducts > 0 && c.Products > s.limits.MaxProducts {
		return apperr.ResourceExhausted("products=%d exceeds limit %d", c.Products, s.limits.MaxProducts)
	}
	return nil
}

// snapshot returns the current generation, which may be nil before the
// first Regenerate. The returned value is immutable.
func (s *Store) snapshot() *generation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Users returns the current user collection in generation order.
// Callers must not mutate the returned slice.
func (s *Store) Users() []model.User {
	if g := s.snapshot(); g != nil {
		return g.users
	}
	return nil
}

// Products returns the current product collection in generation order.
func (s *Store) Products() []model.Product {
	if g := s.snapshot(); g != nil {
		return g.products
	}
	return nil
}

// Orders returns the current order collection in generation order.
func (s *Store) Orders() []model.Order {
	if g := s.snapshot(); g != nil {
		return g.orders
	}
	return nil
}

// UserRows returns the denormalized listing projection. Always the same
// length as Users.
func (s *Store) UserRows() []model.UserRow {
	if g := s.snapshot(); g != nil {
		return g.userRows
	}
	return nil
}

// UserByID looks up a user in the current generation. IDs are dense, so
// this is an index probe, not a scan.
func (s *Store) UserByID(userID int) (model.User, bool) {
	g := s.snapshot()
	if g == nil || userID < 1 || userID > len(g.users) {
		return model.User{}, false
	}
	return g.users[userID-1], true
}

// OrdersForUser returns the user's orders in generation order. The result
// is freshly allocated and owned by the caller.
func (s *Store) OrdersForUser(userID int) []model.Order {
	g := s.snapshot()
	if g == nil {
		return nil
	}
	var out []model.Order
	for _, o := range g.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
