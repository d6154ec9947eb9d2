// Package engine provides a server-side decoding engine adapter. The actual
// video analysis runs on the capture device; decoded values are pushed to
// this adapter, which presents them to scan sessions through the standard
// engine lifecycle.
package engine

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/greenscan/backend/internal/domain"
)

// ErrNotStarted is returned when a decoded value arrives while the engine is
// not capturing.
var ErrNotStarted = errors.New("engine is not started")

// RemoteEngine implements domain.DecodingEngine for a capture device that
// pushes its decoded codes over the network.
type RemoteEngine struct {
	mu          sync.Mutex
	initialized bool
	started     bool
	config      domain.EngineConfig
	handler     domain.DetectionHandler
}

// NewRemoteEngine creates an uninitialized remote engine
func NewRemoteEngine() *RemoteEngine {
	return &RemoteEngine{}
}

// Init records the capture configuration. It validates the config so a bad
// setup fails here, before any session goes Active.
func (e *RemoteEngine) Init(ctx context.Context, cfg domain.EngineConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cfg.MinWidth <= 0 || cfg.MinHeight <= 0 {
		return errors.New("capture resolution must be positive")
	}
	if len(cfg.Readers) == 0 {
		return errors.New("at least one symbology reader is required")
	}

	e.config = cfg
	e.initialized = true
	log.Printf("[ENGINE] Initialized: %dx%d, %d readers, %d workers",
		cfg.MinWidth, cfg.MinHeight, len(cfg.Readers), cfg.Workers)
	return nil
}

// Initialized reports whether Init has succeeded.
func (e *RemoteEngine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Start begins accepting pushed detections.
func (e *RemoteEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return errors.New("engine is not initialized")
	}
	e.started = true
	return nil
}

// Stop halts the stream. Stopping an already-stopped engine is a no-op.
func (e *RemoteEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.started = false
	return nil
}

// Subscribe registers the detection handler, replacing any previous one.
func (e *RemoteEngine) Subscribe(h domain.DetectionHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handler = h
}

// Unsubscribe clears the detection handler.
func (e *RemoteEngine) Unsubscribe() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handler = nil
}

// Offer delivers a decoded value pushed by the capture device. The handler
// runs outside the engine lock: it may legally call Stop or Unsubscribe.
func (e *RemoteEngine) Offer(code string) error {
	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return ErrNotStarted
	}
	handler := e.handler
	e.mu.Unlock()

	if handler != nil {
		handler(domain.Detection{CodeResult: domain.CodeResult{Code: code}})
	}
	return nil
}
