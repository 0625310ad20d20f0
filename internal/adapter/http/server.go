package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/addressforge/address-normalizer/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ReadinessFunc adapts a function to the ReadinessChecker interface.
type ReadinessFunc func(ctx context.Context) error

func (f ReadinessFunc) CheckReadiness(ctx context.Context) error { return f(ctx) }

// AddressPublisher forwards normalized addresses to downstream consumers.
type AddressPublisher interface {
	PublishAddresses(ctx context.Context, query string, addresses []domain.Address) error
}

// Server exposes the geocoding API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	geocoder   domain.Geocoder
	publisher  AddressPublisher
	logger     *slog.Logger
}

// NewServer creates the HTTP server. publisher may be nil, in which case
// normalized addresses are only returned to the caller.
func NewServer(addr string, geocoder domain.Geocoder, publisher AddressPublisher, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		geocoder:  geocoder,
		publisher: publisher,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/search", s.handleSearch)
	mux.HandleFunc("GET /v1/reverse", s.handleReverse)
	mux.HandleFunc("POST /v1/geocode", s.handleGeocode)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleSearch resolves ?q= into a list of canonical addresses. Provider-side
// failures come back as a 200 envelope with success false; only transport
// failures map to 502.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	opts := domain.SearchOptions{
		Filter:  r.URL.Query().Get("filter"),
		Country: r.URL.Query().Get("country"),
	}

	result, err := s.geocoder.SearchPlaces(r.Context(), query, opts)
	if err != nil {
		s.logger.Error("search request failed", "error", err)
		writeError(w, http.StatusBadGateway, "geocoding provider unreachable")
		return
	}

	if s.publisher != nil && result.Success && len(result.Addresses) > 0 {
		if err := s.publisher.PublishAddresses(r.Context(), query, result.Addresses); err != nil {
			// Publishing is best effort; the caller still gets the addresses.
			s.logger.Error("publish addresses failed", "error", err, "count", len(result.Addresses))
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReverse(w http.ResponseWriter, r *http.Request) {
	lat, ok := parseCoordinate(r, "lat", 90)
	if !ok {
		writeError(w, http.StatusBadRequest, "lat must be a number in [-90, 90]")
		return
	}
	lng, ok := parseCoordinate(r, "lng", 180)
	if !ok {
		writeError(w, http.StatusBadRequest, "lng must be a number in [-180, 180]")
		return
	}

	result, err := s.geocoder.ReverseGeocode(r.Context(), lat, lng)
	if err != nil {
		s.logger.Error("reverse geocode request failed", "error", err)
		writeError(w, http.StatusBadGateway, "geocoding provider unreachable")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	var address domain.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		writeError(w, http.StatusBadRequest, "invalid address body")
		return
	}

	result, err := s.geocoder.Geocode(r.Context(), address)
	if err != nil {
		s.logger.Error("geocode request failed", "error", err)
		writeError(w, http.StatusBadGateway, "geocoding provider unreachable")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func parseCoordinate(r *http.Request, name string, bound float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < -bound || v > bound {
		return 0, false
	}
	return v, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
