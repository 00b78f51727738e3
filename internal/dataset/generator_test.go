package dataset

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockshop/internal/apperr"
)

func fixedClock(t *testing.T) time.Time {
	t.Helper()
	old := Now
	t.Cleanup(func() { Now = old })
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	Now = func() time.Time { return at }
	return at
}

func TestGenerate_SmallScenario(t *testing.T) {
	genTime := fixedClock(t)

	st := NewStore(12345, Limits{})
	res, err := st.Regenerate(Counts{Users: 3, Orders: 5, Products: 2})
	require.NoError(t, err)
	assert.Equal(t, Counts{Users: 3, Orders: 5, Products: 2}, res)

	users := st.Users()
	products := st.Products()
	orders := st.Orders()
	require.Len(t, users, 3)
	require.Len(t, products, 2)
	require.Len(t, orders, 5)

	for i, u := range users {
		assert.Equal(t, i+1, u.ID, "user IDs dense and 1-based")
		assert.Equal(t, strings.ToLower(u.Email), u.Email)
		assert.True(t, strings.HasSuffix(u.Email, "@example.com"))
		assert.False(t, u.CreatedAt.After(genTime))
		assert.False(t, u.CreatedAt.Before(genTime.Add(-730*day)))
	}
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.True(t, strings.HasSuffix(p.Name, fmt.Sprintf(" %d", p.ID)), "product name carries its index: %q", p.Name)
		assert.GreaterOrEqual(t, p.Price, int64(10))
		assert.Less(t, p.Price, int64(510))
	}
	for i, o := range orders {
		assert.Equal(t, i+1, o.ID, "order IDs dense and 1-based")
		require.GreaterOrEqual(t, o.UserID, 1)
		require.LessOrEqual(t, o.UserID, 3)
		require.GreaterOrEqual(t, o.ProductID, 1)
		require.LessOrEqual(t, o.ProductID, 2)
		assert.GreaterOrEqual(t, o.Amount, int64(1))
		assert.LessOrEqual(t, o.Amount, int64(10))

		user := users[o.UserID-1]
		assert.False(t, o.CreatedAt.Before(user.CreatedAt), "order %d before its user's creation", o.ID)
		assert.False(t, o.CreatedAt.After(genTime), "order %d after generation time", o.ID)
	}
}

// Recomputes every aggregate independently from the raw orders and products
// and checks the projection against it.
func TestGenerate_AggregateMatchesRecomputation(t *testing.T) {
	fixedClock(t)

	st := NewStore(777, Limits{})
	_, err := st.Regenerate(Counts{Users: 40, Orders: 500, Products: 15})
	require.NoError(t, err)

	products := st.Products()
	wantCount := make(map[int]int)
	wantTotal := make(map[int]int64)
	var grandTotal int64
	for _, o := range st.Orders() {
		line := o.Amount * products[o.ProductID-1].Price
		wantCount[o.UserID]++
		wantTotal[o.UserID] += line
		grandTotal += line
	}

	rows := st.UserRows()
	require.Len(t, rows, len(st.Users()), "one row per user")

	var rowTotal int64
	for _, row := range rows {
		assert.Equal(t, wantCount[row.ID], row.OrderCount, "user %d count", row.ID)
		assert.Equal(t, wantTotal[row.ID], row.OrderTotal, "user %d total", row.ID)
		rowTotal += row.OrderTotal
	}
	assert.Equal(t, grandTotal, rowTotal)
}

func TestGenerate_Deterministic(t *testing.T) {
	fixedClock(t)

	a := NewStore(42, Limits{})
	b := NewStore(42, Limits{})
	c := Counts{Users: 10, Orders: 30, Products: 5}
	_, err := a.Regenerate(c)
	require.NoError(t, err)
	_, err = b.Regenerate(c)
	require.NoError(t, err)

	assert.Equal(t, a.Users(), b.Users())
	assert.Equal(t, a.Products(), b.Products())
	assert.Equal(t, a.Orders(), b.Orders())
	assert.Equal(t, a.UserRows(), b.UserRows())
}

func TestGenerate_UsersWithoutOrdersGetZeroRow(t *testing.T) {
	fixedClock(t)

	st := NewStore(5, Limits{})
	_, err := st.Regenerate(Counts{Users: 50, Orders: 1, Products: 3})
	require.NoError(t, err)

	rows := st.UserRows()
	require.Len(t, rows, 50)
	orderUser := st.Orders()[0].UserID
	for _, row := range rows {
		if row.ID == orderUser {
			continue
		}
		assert.Zero(t, row.OrderCount, "user %d", row.ID)
		assert.Zero(t, row.OrderTotal, "user %d", row.ID)
	}
}

func TestRegenerate_RejectsBadCounts(t *testing.T) {
	st := NewStore(1, Limits{MaxUsers: 100, MaxOrders: 100, MaxProducts: 100})

	_, err := st.Regenerate(Counts{Users: 0, Orders: 1, Products: 1})
	assert.Equal(t, apperr.KindInvalidParameter, apperr.KindOf(err))

	_, err = st.Regenerate(Counts{Users: 1, Orders: -4, Products: 1})
	assert.Equal(t, apperr.KindInvalidParameter, apperr.KindOf(err))

	_, err = st.Regenerate(Counts{Users: 101, Orders: 1, Products: 1})
	assert.Equal(t, apperr.KindResourceExhausted, apperr.KindOf(err))

	_, err = st.Regenerate(Counts{Users: 1, Orders: 101, Products: 1})
	assert.Equal(t, apperr.KindResourceExhausted, apperr.KindOf(err))

	_, err = st.Regenerate(Counts{Users: 1, Orders: 1, Products: 101})
	assert.Equal(t, apperr.KindResourceExhausted, apperr.KindOf(err))
}
