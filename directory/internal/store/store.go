package store

import (
	"github.com/RomanyU1662160/docker-kuberents/directory/internal/domain"
)

// Store holds user records in memory. Records are fixed at construction and
// read-only afterwards.
type Store struct {
	users []domain.User
}

// New returns a store over the given user records.
func New(users []domain.User) *Store {
	return &Store{users: append([]domain.User(nil), users...)}
}

// Seed returns a store preloaded with the demo user set.
func Seed() *Store {
	return New([]domain.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
		{ID: 3, Name: "Alice Johnson", Email: "alice@example.com"},
	})
}

// List returns all users in store order. The result is always non-nil.
func (s *Store) List() []domain.User {
	return append([]domain.User(nil), s.users...)
}
