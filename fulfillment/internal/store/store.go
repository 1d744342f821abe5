package store

import (
	"github.com/RomanyU1662160/docker-kuberents/fulfillment/internal/domain"
)

// Store holds order records in memory. Records are fixed at construction and
// read-only afterwards, so concurrent reads need no locking.
type Store struct {
	orders []domain.Order
}

// New returns a store over the given order records.
func New(orders []domain.Order) *Store {
	return &Store{orders: append([]domain.Order(nil), orders...)}
}

// Seed returns a store preloaded with the demo order set.
func Seed() *Store {
	return New([]domain.Order{
		{ID: 1, Item: "Laptop", Quantity: 1, UserID: 1},
		{ID: 2, Item: "Phone", Quantity: 2, UserID: 1},
		{ID: 3, Item: "Tablet", Quantity: 1, UserID: 2},
		{ID: 4, Item: "Monitor", Quantity: 3, UserID: 2},
	})
}

// ListByUser returns every order whose user id matches, in store order. The
// result is always non-nil so an empty match serialises as [] rather than
// null.
func (s *Store) ListByUser(userID int) []domain.Order {
	matched := make([]domain.Order, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			matched = append(matched, order)
		}
	}
	return matched
}
