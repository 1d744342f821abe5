package server

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"log/slog"

	"github.com/RomanyU1662160/docker-kuberents/pkg/aggregate"
	apiclient "github.com/RomanyU1662160/docker-kuberents/pkg/api/client"
	"github.com/RomanyU1662160/docker-kuberents/pkg/config"
)

// Server hosts the dashboard web UI. Every page load runs one aggregation
// pass against the directory service; nothing is cached between requests.
type Server struct {
	cfg        config.DashboardConfig
	aggregator aggregate.Service
	templates  *template.Template
	mux        *http.ServeMux
	logger     *slog.Logger
}

// New constructs a configured server ready to serve HTTP traffic.
func New(cfg config.DashboardConfig, logger *slog.Logger) (*Server, error) {
	apiClient, err := apiclient.New(cfg.DirectoryURL)
	if err != nil {
		return nil, err
	}
	templates, err := template.New("base").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	srv := &Server{
		cfg:        cfg,
		aggregator: aggregate.New(apiClient, logger),
		templates:  templates,
		mux:        http.NewServeMux(),
		logger:     logger,
	}
	srv.registerRoutes()
	return srv, nil
}

// ServeHTTP conforms to http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	healthy := s.aggregator.Healthy(ctx)
	views, err := s.aggregator.UsersWithOrders(ctx)
	if err != nil {
		s.renderError(w, r, http.StatusBadGateway, "failed to load users")
		return
	}

	data := map[string]any{
		"Title":   "Users",
		"Healthy": healthy,
		"Users":   views,
	}
	s.render(w, r, "home", data)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"OK","timestamp":"` + time.Now().UTC().Format(time.RFC3339Nano) + `"}`))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, tpl string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, tpl, data); err != nil {
		s.logger.Error("template render failed", "template", tpl, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.logger.Warn("dashboard error", "status", status, "message", message)
	http.Error(w, message, status)
}
