package dataset

import "mockshop/internal/model"

// orderAgg is the per-user running aggregate accumulated while orders are
// generated. It lives only for the duration of one generation pass.
type orderAgg struct {
	count int
	total int64
}

// aggregateIndex maps userID to its running order aggregate.
type aggregateIndex map[int]orderAgg

func newAggregateIndex(userCount int) aggregateIndex {
	return make(aggregateIndex, userCount)
}

// apply records one order for userID: count+1, total+lineTotal.
// Called exactly once per generated order.
func (a aggregateIndex) apply(userID int, lineTotal int64) {
	agg := a[userID]
	agg.count++
	agg.total += lineTotal
	a[userID] = agg
}

// project materializes the read-only UserRow view: every user exactly once,
// merged with its aggregate entry (zero values for users without orders).
// Pure; users is not mutated.
func (a aggregateIndex) project(users []model.User) []model.UserRow {
	rows := make([]model.UserRow, 0, len(users))
	for _, u := range users {
		agg := a[u.ID]
		rows = append(rows, model.UserRow{
			User:       u,
			OrderCount: agg.count,
			OrderTotal: agg.total,
		})
	}
	return rows
}
