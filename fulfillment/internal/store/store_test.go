package store

import (
	"testing"

	"github.com/RomanyU1662160/docker-kuberents/fulfillment/internal/domain"
)

func TestListByUserFiltersAndPreservesOrder(t *testing.T) {
	s := New([]domain.Order{
		{ID: 1, Item: "Laptop", Quantity: 1, UserID: 1},
		{ID: 2, Item: "Phone", Quantity: 2, UserID: 1},
		{ID: 3, Item: "Tablet", Quantity: 1, UserID: 2},
	})

	orders := s.ListByUser(1)
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 1, got %d", len(orders))
	}
	if orders[0].Item != "Laptop" || orders[1].Item != "Phone" {
		t.Fatalf("store order not preserved: %+v", orders)
	}
	for _, order := range orders {
		if order.UserID != 1 {
			t.Fatalf("order %d belongs to user %d, not 1", order.ID, order.UserID)
		}
	}
}

func TestListByUserReturnsEmptyNotNil(t *testing.T) {
	s := Seed()

	orders := s.ListByUser(99)
	if orders == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders for unknown user, got %d", len(orders))
	}
}

func TestSeedMatchesDemoDataset(t *testing.T) {
	s := Seed()

	john := s.ListByUser(1)
	if len(john) != 2 || john[0].Item != "Laptop" || john[1].Item != "Phone" {
		t.Fatalf("unexpected orders for user 1: %+v", john)
	}
	jane := s.ListByUser(2)
	if len(jane) != 2 || jane[0].Item != "Tablet" || jane[1].Item != "Monitor" {
		t.Fatalf("unexpected orders for user 2: %+v", jane)
	}
}
