package usecase

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/greenscan/backend/internal/domain"
)

// defaultWorkers is used when the host does not report hardware concurrency
const defaultWorkers = 4

// DefaultEngineConfig returns the fixed capture configuration: rear-facing
// camera, minimum 640x480, the common retail symbologies, and a worker pool
// sized to the host.
func DefaultEngineConfig() domain.EngineConfig {
	workers := runtime.NumCPU()
	if workers <= 0 {
		workers = defaultWorkers
	}
	return domain.EngineConfig{
		FacingMode: "environment",
		MinWidth:   640,
		MinHeight:  480,
		Readers:    []string{"ean_reader", "ean_8_reader", "upc_reader", "upc_e_reader", "code_128_reader"},
		Multiple:   false,
		Locate:     true,
		Workers:    workers,
	}
}

// ScanSession drives the decoding engine's lifecycle. The camera is a
// process-wide exclusive resource, so at most one session is Active at a
// time: starting an Active session resumes it instead of opening a second
// capture stream.
type ScanSession struct {
	mu     sync.Mutex
	engine domain.DecodingEngine
	config domain.EngineConfig
	onCode func(string)
	state  domain.ScanState
	id     string
}

// NewScanSession creates a session over an injected engine. onCode receives
// each decoded barcode after the session has stopped itself.
func NewScanSession(engine domain.DecodingEngine, config domain.EngineConfig, onCode func(string)) *ScanSession {
	return &ScanSession{
		engine: engine,
		config: config,
		onCode: onCode,
		state:  domain.ScanIdle,
	}
}

// Start activates capture. If the engine is already initialized this merely
// resumes it; otherwise the engine is initialized exactly once. Repeated
// calls while Active are no-ops and never register a second detection
// handler. On init failure the session stays Idle and returns ErrCameraInit;
// it does not partially start.
func (s *ScanSession) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.ScanActive {
		return nil
	}

	if !s.engine.Initialized() {
		if err := s.engine.Init(ctx, s.config); err != nil {
			log.Printf("[SCAN] Engine init failed: %v", err)
			return fmt.Errorf("%w: %v", domain.ErrCameraInit, err)
		}
	}

	s.engine.Subscribe(s.handleDetection)
	if err := s.engine.Start(); err != nil {
		s.engine.Unsubscribe()
		return fmt.Errorf("%w: %v", domain.ErrCameraInit, err)
	}

	s.id = uuid.NewString()
	s.state = domain.ScanActive
	log.Printf("[SCAN] Session %s active", s.id)
	return nil
}

// Stop halts capture and unregisters the detection handler. It is
// idempotent: calling it on an Idle session, or when the engine has no
// active stream, is a safe no-op.
func (s *ScanSession) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.ScanIdle {
		return
	}

	s.engine.Unsubscribe()
	if err := s.engine.Stop(); err != nil {
		log.Printf("[SCAN] Session %s: engine stop: %v", s.id, err)
	}
	s.state = domain.ScanIdle
	log.Printf("[SCAN] Session %s stopped", s.id)
}

// State reports the current lifecycle state.
func (s *ScanSession) State() domain.ScanState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID returns the identifier of the most recent activation, or "" if the
// session has never been started.
func (s *ScanSession) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// handleDetection receives decoded values from the engine. Empty codes are
// ignored and the session stays Active. On a real code the session stops
// itself first, so continuous frame analysis can't trigger twice, and only
// then hands the code to the consumer.
func (s *ScanSession) handleDetection(d domain.Detection) {
	code := d.CodeResult.Code
	if code == "" {
		return
	}

	s.Stop()
	log.Printf("[SCAN] Decoded %q", code)
	if s.onCode != nil {
		s.onCode(code)
	}
}
