package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/RomanyU1662160/docker-kuberents/fulfillment/internal/domain"
	"github.com/RomanyU1662160/docker-kuberents/fulfillment/internal/store"
)

func newTestRouter() *Router {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, store.Seed())
}

func TestHealthReportsOK(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var payload struct {
		Status    string  `json:"status"`
		Uptime    float64 `json:"uptime"`
		Timestamp string  `json:"timestamp"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Status != "OK" {
		t.Fatalf("expected status OK, got %q", payload.Status)
	}
	if payload.Timestamp == "" {
		t.Fatal("expected timestamp to be set")
	}
}

func TestOrdersByUserReturnsMatchingSubset(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/orders-by-user/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var payload struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(payload.Orders))
	}
	if payload.Orders[0].Item != "Laptop" || payload.Orders[1].Item != "Phone" {
		t.Fatalf("unexpected orders: %+v", payload.Orders)
	}
	for _, order := range payload.Orders {
		if order.UserID != 1 {
			t.Fatalf("order %d leaked from user %d", order.ID, order.UserID)
		}
	}
}

func TestOrdersByUserUnknownUserIsEmptyList(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/orders-by-user/99", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 for unknown user, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "{\"orders\":[]}\n" {
		t.Fatalf("expected empty orders array, got %q", body)
	}
}

func TestOrdersByUserNonNumericIDIsEmptyList(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/orders-by-user/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 for non-numeric id, got %d", rr.Code)
	}
	var payload struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Orders) != 0 {
		t.Fatalf("expected no orders, got %+v", payload.Orders)
	}
}

func TestUnmatchedRouteReturnsStructured404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope/nothing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	var payload map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["error"] != "Route not found" {
		t.Fatalf("unexpected error field: %q", payload["error"])
	}
	if payload["path"] != "/nope/nothing" {
		t.Fatalf("unexpected path field: %q", payload["path"])
	}
}

func TestOrdersByUserRejectsNonGet(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/orders-by-user/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/orders-by-user/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for preflight, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected CORS origin header: %q", got)
	}
}
