// Package dataset generates the synthetic collections and owns them for the
// process lifetime. Generation is a single pass: users, then products, then
// orders with the per-user aggregate accumulated alongside, then the UserRow
// projection. A pass builds a complete generation value before anything
// becomes visible to readers.
package dataset

import (
	"fmt"
	"strings"
	"time"

	"mockshop/internal/model"
	"mockshop/internal/rng"
)

// day is the single definition of "day" for both user creation offsets and
// order offsets.
const day = 24 * time.Hour

// Spread of user creation times behind the generation time, in days.
const maxUserAgeDays = 730

// Now returns the generation timestamp. Variable for test injection.
var Now = func() time.Time { return time.Now().UTC() }

// Counts are the requested collection sizes for one generation pass.
type Counts struct {
	Users    int
	Orders   int
	Products int
}

// generation is one complete, immutable dataset epoch. All slices are
// fully populated before a generation is published; readers never see a
// partial one.
type generation struct {
	users    []model.User
	products []model.Product
	orders   []model.Order
	userRows []model.UserRow
}

// newGeneration runs the full generation pass. src supplies every random
// draw; now anchors all timestamps.
func newGeneration(src *rng.Source, now time.Time, c Counts) *generation {
	g := &generation{}
	g.generateUsers(src, now, c.Users)
	g.generateProducts(src, c.Products)
	agg := g.generateOrders(src, now, c.Orders)
	g.userRows = agg.project(g.users)
	return g
}

func (g *generation) generateUsers(src *rng.Source, now time.Time, count int) {
	g.users = make([]model.User, 0, count)
	for i := 1; i <= count; i++ {
		first := firstNames[src.Intn(len(firstNames))]
		last := lastNames[src.Intn(len(lastNames))]
		daysAgo := src.Intn(maxUserAgeDays)
		g.users = append(g.users, model.User{
			ID:        i,
			Name:      first + " " + last,
			Email:     strings.ToLower(first) + "." + strings.ToLower(last) + "@example.com",
			CreatedAt: now.Add(-time.Duration(daysAgo) * day),
		})
	}
}

func (g *generation) generateProducts(src *rng.Source, count int) {
	g.products = make([]model.Product, 0, count)
	for i := 1; i <= count; i++ {
		base := productNames[src.Intn(len(productNames))]
		g.products = append(g.products, model.Product{
			ID:    i,
			Name:  fmt.Sprintf("%s %d", base, i),
			Price: int64(src.Intn(500) + 10),
		})
	}
}

// generateOrders draws each order against the already generated users and
// products and feeds the aggregate index as a side effect, one apply per
// order. An order's CreatedAt lands on a whole-day offset inside
// [user.CreatedAt, now].
func (g *generation) generateOrders(src *rng.Source, now time.Time, count int) aggregateIndex {
	g.orders = make([]model.Order, 0, count)
	agg := newAggregateIndex(len(g.users))
	for i := 1; i <= count; i++ {
		userID := src.Intn(len(g.users)) + 1
		productID := src.Intn(len(g.products)) + 1
		amount := int64(src.Intn(10) + 1)

		user := g.users[userID-1]
		span := int(now.Sub(user.CreatedAt) / day)
		offset := 0
		if span > 0 {
			offset = src.Intn(span)
		}

		product := g.products[productID-1]
		g.orders = append(g.orders, model.Order{
			ID:        i,
			UserID:    userID,
			ProductID: productID,
			Amount:    amount,
			CreatedAt: user.CreatedAt.Add(time.Duration(offset) * day),
		})
		agg.apply(userID, amount*product.Price)
	}
	return agg
}
