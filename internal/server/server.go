// Package server exposes the translation service and the health tutor over
// HTTP. Boundary policy: the only client error is empty input (400);
// everything else is answered 200 with best-effort content, because an
// opaque error is worse than a degraded answer for the service's audience.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"codeberg.org/snonux/shabdsetu/internal"
	"codeberg.org/snonux/shabdsetu/internal/health"
	"codeberg.org/snonux/shabdsetu/internal/translator"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8003".
	Addr string

	// AllowedOrigins for CORS. Empty allows any origin, which suits the
	// usual same-host frontend deployments.
	AllowedOrigins []string
}

// DefaultConfig returns default server settings.
func DefaultConfig() *Config {
	return &Config{Addr: ":8003"}
}

// Server wires the HTTP routes to the translation service and health tutor.
type Server struct {
	svc    *translator.Service
	tutor  *health.Tutor
	config *Config
	mux    *http.ServeMux
}

// New creates a Server.
func New(svc *translator.Service, tutor *health.Tutor, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	s := &Server{
		svc:    svc,
		tutor:  tutor,
		config: config,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("POST /translate", s.handleTranslate)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /stats", s.handleStats)
	s.mux.HandleFunc("POST /clear-cache", s.handleClearCache)
	s.mux.HandleFunc("POST /health/query", s.handleHealthQuery)
	s.mux.HandleFunc("POST /smart/query", s.handleSmartQuery)
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.cors(s.mux)
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// cors allows browser frontends to call the API.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	if len(s.config.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range s.config.AllowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: failed to encode response: %v", err)
	}
}

// writeError writes an error detail envelope.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// serviceBanner is the GET / payload.
func (s *Server) serviceBanner() map[string]any {
	return map[string]any{
		"message":          "ShabdSetu Bidirectional Translation API is running!",
		"version":          internal.Version,
		"features":         []string{"English to Marathi", "Marathi to English", "Auto-detection", "Health queries"},
		"translation_apis": append([]string{"dictionary"}, s.svc.ProviderNames()...),
		"api_calls_made":   s.svc.APICallCount(),
	}
}
