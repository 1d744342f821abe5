package store

import "testing"

func TestSeedListsUsersInOrder(t *testing.T) {
	users := Seed().List()

	if len(users) != 3 {
		t.Fatalf("expected 3 seed users, got %d", len(users))
	}
	names := []string{"John Doe", "Jane Smith", "Alice Johnson"}
	for i, want := range names {
		if users[i].Name != want {
			t.Fatalf("user %d: expected %q, got %q", i, want, users[i].Name)
		}
		if users[i].ID != i+1 {
			t.Fatalf("user %d: expected id %d, got %d", i, i+1, users[i].ID)
		}
	}
}

func TestListCopiesBackingSlice(t *testing.T) {
	s := Seed()

	first := s.List()
	first[0].Name = "mutated"

	if s.List()[0].Name != "John Doe" {
		t.Fatal("mutating a listed user leaked into the store")
	}
}
