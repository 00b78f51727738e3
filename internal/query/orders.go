package query

import (
	"slices"

	"mockshop/internal/apperr"
	"mockshop/internal/model"
)

// OrderSource is the slice of store behavior the order listing needs.
type OrderSource interface {
	UserByID(userID int) (model.User, bool)
	OrdersForUser(userID int) []model.Order
}

// ListUserOrders pages through one user's orders, most recent first. The
// ordering is fixed, not caller-selectable. Returns a NotFound error when
// the user is absent from the current generation.
func ListUserOrders(src OrderSource, userID, page, pageSize int) (model.UserOrders, error) {
	user, ok := src.UserByID(userID)
	if !ok {
		return model.UserOrders{}, apperr.NotFound("user %d not found", userID)
	}

	orders := src.OrdersForUser(userID)
	slices.SortStableFunc(orders, func(a, b model.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return model.UserOrders{
		Page: paginate(orders, page, pageSize),
		User: model.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}
