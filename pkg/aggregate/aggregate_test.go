package aggregate

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"log/slog"

	"github.com/RomanyU1662160/docker-kuberents/pkg/api/client"
)

type fakeDirectory struct {
	health     client.HealthStatus
	healthErr  error
	users      []client.User
	usersErr   error
	orders     map[int][]client.Order
	orderErrs  map[int]error
	orderCalls atomic.Int32
}

func (f *fakeDirectory) Health(ctx context.Context) (client.HealthStatus, error) {
	return f.health, f.healthErr
}

func (f *fakeDirectory) ListUsers(ctx context.Context) ([]client.User, error) {
	return f.users, f.usersErr
}

func (f *fakeDirectory) OrdersByUser(ctx context.Context, userID int) ([]client.Order, error) {
	f.orderCalls.Add(1)
	if err, ok := f.orderErrs[userID]; ok {
		return nil, err
	}
	return f.orders[userID], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededDirectory() *fakeDirectory {
	return &fakeDirectory{
		health: client.HealthStatus{Status: "OK", Uptime: 10},
		users: []client.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com"},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
			{ID: 3, Name: "Alice Johnson", Email: "alice@example.com"},
		},
		orders: map[int][]client.Order{
			1: {
				{ID: 1, Item: "Laptop", Quantity: 1, UserID: 1},
				{ID: 2, Item: "Phone", Quantity: 2, UserID: 1},
			},
			2: {
				{ID: 3, Item: "Tablet", Quantity: 1, UserID: 2},
			},
		},
	}
}

func TestUsersWithOrdersJoinsEveryUser(t *testing.T) {
	dir := seededDirectory()
	svc := New(dir, testLogger())

	views, err := svc.UsersWithOrders(context.Background())
	if err != nil {
		t.Fatalf("UsersWithOrders returned error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	if got := dir.orderCalls.Load(); got != 3 {
		t.Fatalf("expected one order fetch per user, got %d", got)
	}

	john := views[0]
	if john.User.Name != "John Doe" || len(john.Orders) != 2 {
		t.Fatalf("unexpected view for John: %+v", john)
	}
	if john.Orders[0].Item != "Laptop" || john.Orders[1].Item != "Phone" {
		t.Fatalf("unexpected orders for John: %+v", john.Orders)
	}
	jane := views[1]
	if len(jane.Orders) != 1 || jane.Orders[0].Item != "Tablet" {
		t.Fatalf("unexpected orders for Jane: %+v", jane.Orders)
	}
	alice := views[2]
	if alice.Err != nil || len(alice.Orders) != 0 {
		t.Fatalf("expected empty orders for Alice, got %+v", alice)
	}
}

func TestUsersWithOrdersPreservesUserListOrder(t *testing.T) {
	dir := seededDirectory()
	svc := New(dir, testLogger())

	for i := 0; i < 20; i++ {
		views, err := svc.UsersWithOrders(context.Background())
		if err != nil {
			t.Fatalf("UsersWithOrders returned error: %v", err)
		}
		for j, want := range []int{1, 2, 3} {
			if views[j].User.ID != want {
				t.Fatalf("run %d: position %d holds user %d, want %d", i, j, views[j].User.ID, want)
			}
		}
	}
}

func TestUsersWithOrdersIsolatesPerUserFailures(t *testing.T) {
	dir := seededDirectory()
	dir.orderErrs = map[int]error{2: errors.New("fulfillment unreachable")}
	svc := New(dir, testLogger())

	views, err := svc.UsersWithOrders(context.Background())
	if err != nil {
		t.Fatalf("expected no aggregate error, got %v", err)
	}
	if views[0].Err != nil || views[2].Err != nil {
		t.Fatal("healthy users should not carry errors")
	}
	if views[1].Err == nil {
		t.Fatal("expected error marker on failed user")
	}
	if views[1].User.Name != "Jane Smith" {
		t.Fatalf("error marker attached to wrong user: %+v", views[1].User)
	}
	if len(views[0].Orders) != 2 {
		t.Fatalf("healthy user lost orders: %+v", views[0].Orders)
	}
}

func TestUsersWithOrdersFailsWhenUserListFails(t *testing.T) {
	dir := seededDirectory()
	dir.usersErr = errors.New("directory down")
	svc := New(dir, testLogger())

	if _, err := svc.UsersWithOrders(context.Background()); err == nil {
		t.Fatal("expected error when user list cannot be fetched")
	}
	if got := dir.orderCalls.Load(); got != 0 {
		t.Fatalf("no order fetches expected, got %d", got)
	}
}

func TestHealthy(t *testing.T) {
	dir := seededDirectory()
	svc := New(dir, testLogger())
	if !svc.Healthy(context.Background()) {
		t.Fatal("expected healthy for status OK")
	}

	dir.health.Status = "DEGRADED"
	if svc.Healthy(context.Background()) {
		t.Fatal("expected unhealthy for non-OK status")
	}

	dir.healthErr = errors.New("probe failed")
	if svc.Healthy(context.Background()) {
		t.Fatal("expected unhealthy on probe error")
	}
}
