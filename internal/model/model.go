// Package model defines the generated entities and the response envelopes
// shared by the dataset store, the query engine and the HTTP layer.
package model

import "time"

// User is a generated customer. Immutable once generated.
// IDs are dense and 1-based within a generation.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product is a generated catalog item. Price is in whole currency units.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Order references a User and a Product from the same generation.
// CreatedAt is never before the referenced user's CreatedAt.
type Order struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ProductID int       `json:"productId"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRow is the denormalized listing projection: the user plus its
// precomputed order aggregate. Read-only; rebuilt on every generation.
type UserRow struct {
	User
	OrderCount int   `json:"orderCount"`
	OrderTotal int64 `json:"orderTotal"`
}

// UserSummary is the slim user echo attached to an order listing.
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Page is one page of a filtered, sorted collection plus its metadata.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// UserOrders is a page of one user's orders plus the user summary.
type UserOrders struct {
	Page[Order]
	User UserSummary `json:"user"`
}
