// Package server exposes string analysis and querying over HTTP.
// It owns the request lifecycle: routing, CORS, rate limiting, sentinel
// error mapping, and graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/solset/stringlens/config"
	"github.com/solset/stringlens/storage"
)

// ServerState tracks the lifecycle phase for graceful shutdown
type ServerState int32

const (
	ServerStateRunning ServerState = iota
	ServerStateDraining
	ServerStateStopped
)

// Server serves analyzed strings and natural-language queries over HTTP
type Server struct {
	db     *sql.DB
	dbPath string // Database file path (for display in banner)
	store  *storage.SQLStore
	cfg    *config.Config
	logger *zap.SugaredLogger

	// Rate limiting; nil when server.rate_limit_rps is 0
	limiter *rate.Limiter

	// HTTP server with timeouts
	httpServer *http.Server

	// Lifecycle management
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	state     atomic.Int32
	startTime time.Time
}

// New creates a server over an open, migrated database
func New(db *sql.DB, dbPath string, cfg *config.Config, logger *zap.SugaredLogger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	var limiter *rate.Limiter
	if cfg != nil && cfg.Server.RateLimitRPS > 0 {
		burst := cfg.Server.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimitRPS), burst)
	}

	return &Server{
		db:        db,
		dbPath:    dbPath,
		store:     storage.NewSQLStore(db, logger),
		cfg:       cfg,
		logger:    logger,
		limiter:   limiter,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// getState returns the current server state
func (s *Server) getState() ServerState {
	return ServerState(s.state.Load())
}

// setState atomically updates the server state
func (s *Server) setState(newState ServerState) {
	s.state.Store(int32(newState))
	if s.logger != nil {
		s.logger.Infow("Server state changed", "new_state", stateString(newState))
	}
}

// stateString returns human-readable state name
func stateString(state ServerState) string {
	switch state {
	case ServerStateRunning:
		return "running"
	case ServerStateDraining:
		return "draining"
	case ServerStateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
