package server

import (
	"net/http"
	"strings"
)

// routes configures all HTTP handlers. The exact filter-by-natural-language
// pattern takes precedence over the {value} wildcard under Go 1.22 mux
// specificity rules.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /strings", s.HandleCreateString)
	mux.HandleFunc("GET /strings", s.HandleListStrings)
	mux.HandleFunc("GET /strings/filter-by-natural-language", s.HandleNaturalLanguageFilter)
	mux.HandleFunc("GET /strings/{value}", s.HandleGetString)
	mux.HandleFunc("DELETE /strings/{value}", s.HandleDeleteString)
	mux.HandleFunc("GET /health", s.HandleHealth)

	return s.corsMiddleware(s.rateLimitMiddleware(mux.ServeHTTP))
}

// corsMiddleware adds CORS headers to HTTP responses using configured
// allowed origins
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// originAllowed validates a request origin against configured allowed
// origins. Prefix matching allows any port number.
func (s *Server) originAllowed(origin string) bool {
	if s.cfg == nil || len(s.cfg.Server.AllowedOrigins) == 0 {
		// Secure default: localhost only
		return strings.HasPrefix(origin, "http://localhost") ||
			strings.HasPrefix(origin, "https://localhost")
	}

	for _, allowed := range s.cfg.Server.AllowedOrigins {
		if strings.HasPrefix(origin, allowed) {
			return true
		}
	}
	return false
}

// rateLimitMiddleware rejects requests over the configured rate with 429.
// Disabled when no limiter is configured.
func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}
