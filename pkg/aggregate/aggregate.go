package aggregate

import (
	"context"
	"sync"

	"log/slog"

	"github.com/RomanyU1662160/docker-kuberents/pkg/api/client"
)

// UserView is a directory user enriched with the orders fetched for it
// through the gateway. Built per page load, never persisted.
type UserView struct {
	User   client.User
	Orders []client.Order
	// Err is set when the order fetch for this user failed; the rest of the
	// view still populates.
	Err error
}

// Directory is the subset of the directory client the aggregator needs.
type Directory interface {
	Health(ctx context.Context) (client.HealthStatus, error)
	ListUsers(ctx context.Context) ([]client.User, error)
	OrdersByUser(ctx context.Context, userID int) ([]client.Order, error)
}

// Service aggregates directory users with their fulfillment orders.
type Service struct {
	api    Directory
	logger *slog.Logger
}

// New returns an aggregation service backed by the given directory client.
func New(api Directory, logger *slog.Logger) Service {
	return Service{api: api, logger: logger}
}

// Healthy reports whether the directory service currently answers its health
// probe with status "OK". Any other status or failure counts as unhealthy.
func (s Service) Healthy(ctx context.Context) bool {
	status, err := s.api.Health(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("directory health probe failed", "error", err)
		}
		return false
	}
	return status.Status == "OK"
}

// UsersWithOrders fetches the user list, then fans out one concurrent order
// fetch per user through the gateway and joins the settled results. The
// returned slice preserves the user-list order regardless of completion
// order. A failed per-user fetch marks only that entry; the call errors only
// when the user list itself cannot be fetched.
func (s Service) UsersWithOrders(ctx context.Context) ([]UserView, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, len(users))
	var wg sync.WaitGroup
	for i, user := range users {
		wg.Add(1)
		go func(i int, user client.User) {
			defer wg.Done()
			orders, err := s.api.OrdersByUser(ctx, user.ID)
			if err != nil {
				if s.logger != nil {
					s.logger.Warn("order fetch failed", "user_id", user.ID, "error", err)
				}
				views[i] = UserView{User: user, Err: err}
				return
			}
			views[i] = UserView{User: user, Orders: orders}
		}(i, user)
	}
	wg.Wait()
	return views, nil
}
