package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"encoding/json"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RomanyU1662160/docker-kuberents/fulfillment/internal/store"
)

// Router exposes HTTP endpoints for the fulfillment service.
type Router struct {
	mux                *http.ServeMux
	logger             *slog.Logger
	orders             *store.Store
	started            time.Time
	metricsOnce        sync.Once
	metricsInitialized bool
	requestTotal       *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	orderLookups       *prometheus.CounterVec
}

// New creates and registers handlers.
func New(logger *slog.Logger, orders *store.Store) *Router {
	r := &Router{
		mux:     http.NewServeMux(),
		logger:  logger,
		orders:  orders,
		started: time.Now(),
	}
	r.initMetrics()
	r.routes()
	return r
}

// ServeHTTP satisfies http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) routes() {
	r.mux.HandleFunc("/metrics", promhttp.Handler().ServeHTTP)
	r.mux.HandleFunc("/health", r.cors(r.instrument("/health", r.handleHealth)))
	r.mux.HandleFunc("/orders-by-user/", r.cors(r.instrument("/orders-by-user/:id", r.handleOrdersByUser)))
	r.mux.HandleFunc("/", r.cors(r.instrument("/", r.handleRoot)))
}

// cors applies the permissive CORS policy both services share and answers
// preflight requests inline.
func (r *Router) cors(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		headers := w.Header()
		headers.Set("Access-Control-Allow-Origin", "*")
		headers.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		headers.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, req)
	}
}

func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		r.notFound(w, req)
		return
	}
	if req.Method != http.MethodGet {
		r.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Hello from the fulfillment service",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		r.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"uptime":    time.Since(r.started).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (r *Router) handleOrdersByUser(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		r.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rawID := strings.TrimPrefix(req.URL.Path, "/orders-by-user/")
	rawID = strings.Trim(rawID, "/")
	if rawID == "" {
		r.writeError(w, http.StatusBadRequest, "user id required")
		return
	}
	// A non-numeric id matches no order rather than failing the request,
	// mirroring the permissive lookup the directory gateway relies on.
	userID, err := strconv.Atoi(rawID)
	if err != nil {
		r.logger.Warn("non-numeric user id in order lookup", "id", rawID)
		r.recordOrderLookup("invalid")
		r.writeJSON(w, http.StatusOK, map[string]any{"orders": []any{}})
		return
	}
	orders := r.orders.ListByUser(userID)
	if len(orders) == 0 {
		r.recordOrderLookup("empty")
	} else {
		r.recordOrderLookup("matched")
	}
	r.writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	r.writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "Route not found",
		"path":  req.URL.Path,
	})
}

func (r *Router) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.logger.Error("failed to encode response", "error", err)
	}
}

func (r *Router) writeError(w http.ResponseWriter, status int, msg string) {
	r.writeJSON(w, status, map[string]string{"error": msg})
}
