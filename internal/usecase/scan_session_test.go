package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/greenscan/backend/internal/domain"
)

// MockEngine is a mock implementation of domain.DecodingEngine that counts
// lifecycle calls.
type MockEngine struct {
	initErr  error
	startErr error

	initCalls        int
	startCalls       int
	stopCalls        int
	subscribeCalls   int
	unsubscribeCalls int

	initialized bool
	handler     domain.DetectionHandler
	lastConfig  domain.EngineConfig
}

func (m *MockEngine) Init(ctx context.Context, cfg domain.EngineConfig) error {
	m.initCalls++
	m.lastConfig = cfg
	if m.initErr != nil {
		return m.initErr
	}
	m.initialized = true
	return nil
}

func (m *MockEngine) Initialized() bool { return m.initialized }

func (m *MockEngine) Start() error {
	m.startCalls++
	return m.startErr
}

func (m *MockEngine) Stop() error {
	m.stopCalls++
	return nil
}

func (m *MockEngine) Subscribe(h domain.DetectionHandler) {
	m.subscribeCalls++
	m.handler = h
}

func (m *MockEngine) Unsubscribe() {
	m.unsubscribeCalls++
	m.handler = nil
}

// detect simulates the engine reporting a decoded value
func (m *MockEngine) detect(code string) {
	if m.handler != nil {
		m.handler(domain.Detection{CodeResult: domain.CodeResult{Code: code}})
	}
}

func TestScanSession_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("initializes the engine exactly once", func(t *testing.T) {
		engine := &MockEngine{}
		session := NewScanSession(engine, DefaultEngineConfig(), nil)

		if err := session.Start(ctx); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		if engine.initCalls != 1 {
			t.Errorf("init calls = %d, want 1", engine.initCalls)
		}
		if session.State() != domain.ScanActive {
			t.Errorf("state = %s, want active", session.State())
		}

		session.Stop()
		if err := session.Start(ctx); err != nil {
			t.Fatalf("restart error = %v", err)
		}
		if engine.initCalls != 1 {
			t.Errorf("init calls after restart = %d, want 1 (resume, not re-init)", engine.initCalls)
		}
	})

	t.Run("double start registers exactly one handler", func(t *testing.T) {
		engine := &MockEngine{}
		session := NewScanSession(engine, DefaultEngineConfig(), nil)

		if err := session.Start(ctx); err != nil {
			t.Fatalf("first Start() error = %v", err)
		}
		if err := session.Start(ctx); err != nil {
			t.Fatalf("second Start() error = %v", err)
		}

		if engine.subscribeCalls != 1 {
			t.Errorf("subscribe calls = %d, want 1", engine.subscribeCalls)
		}
		if engine.startCalls != 1 {
			t.Errorf("engine start calls = %d, want 1", engine.startCalls)
		}
	})

	t.Run("init failure leaves the session idle", func(t *testing.T) {
		engine := &MockEngine{initErr: errors.New("camera permission denied")}
		session := NewScanSession(engine, DefaultEngineConfig(), nil)

		err := session.Start(ctx)
		if !errors.Is(err, domain.ErrCameraInit) {
			t.Fatalf("Start() error = %v, want ErrCameraInit", err)
		}
		if session.State() != domain.ScanIdle {
			t.Errorf("state = %s, want idle", session.State())
		}
		if engine.subscribeCalls != 0 {
			t.Errorf("subscribe calls = %d, want 0 after failed init", engine.subscribeCalls)
		}
	})

	t.Run("capture start failure does not leave a dangling handler", func(t *testing.T) {
		engine := &MockEngine{startErr: errors.New("no stream")}
		session := NewScanSession(engine, DefaultEngineConfig(), nil)

		err := session.Start(ctx)
		if !errors.Is(err, domain.ErrCameraInit) {
			t.Fatalf("Start() error = %v, want ErrCameraInit", err)
		}
		if engine.unsubscribeCalls != engine.subscribeCalls {
			t.Errorf("subscribe/unsubscribe calls = %d/%d, want balanced",
				engine.subscribeCalls, engine.unsubscribeCalls)
		}
	})

	t.Run("passes the fixed capture configuration", func(t *testing.T) {
		engine := &MockEngine{}
		session := NewScanSession(engine, DefaultEngineConfig(), nil)

		if err := session.Start(ctx); err != nil {
			t.Fatalf("Start() error = %v", err)
		}

		cfg := engine.lastConfig
		if cfg.FacingMode != "environment" {
			t.Errorf("facing mode = %q, want environment", cfg.FacingMode)
		}
		if cfg.MinWidth != 640 || cfg.MinHeight != 480 {
			t.Errorf("resolution = %dx%d, want 640x480", cfg.MinWidth, cfg.MinHeight)
		}
		if len(cfg.Readers) != 5 {
			t.Errorf("readers = %v, want 5 symbologies", cfg.Readers)
		}
		if cfg.Multiple {
			t.Error("multiple = true, want single-result mode")
		}
		if cfg.Workers < 1 {
			t.Errorf("workers = %d, want at least 1", cfg.Workers)
		}
	})
}

func TestScanSession_Stop(t *testing.T) {
	t.Run("stop on idle session is a no-op", func(t *testing.T) {
		engine := &MockEngine{}
		session := NewScanSession(engine, DefaultEngineConfig(), nil)

		session.Stop()
		session.Stop()

		if engine.stopCalls != 0 {
			t.Errorf("engine stop calls = %d, want 0", engine.stopCalls)
		}
		if session.State() != domain.ScanIdle {
			t.Errorf("state = %s, want idle", session.State())
		}
	})

	t.Run("stop halts capture and unregisters the handler", func(t *testing.T) {
		engine := &MockEngine{}
		session := NewScanSession(engine, DefaultEngineConfig(), nil)

		if err := session.Start(context.Background()); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		session.Stop()

		if engine.stopCalls != 1 {
			t.Errorf("engine stop calls = %d, want 1", engine.stopCalls)
		}
		if engine.unsubscribeCalls != 1 {
			t.Errorf("unsubscribe calls = %d, want 1", engine.unsubscribeCalls)
		}
		if session.State() != domain.ScanIdle {
			t.Errorf("state = %s, want idle", session.State())
		}
	})
}

func TestScanSession_Detection(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers the code after stopping itself", func(t *testing.T) {
		var got []string
		engine := &MockEngine{}
		session := NewScanSession(engine, DefaultEngineConfig(), func(code string) {
			got = append(got, code)
		})

		if err := session.Start(ctx); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		engine.detect("3017620422003")

		if len(got) != 1 || got[0] != "3017620422003" {
			t.Fatalf("delivered codes = %v, want [3017620422003]", got)
		}
		if session.State() != domain.ScanIdle {
			t.Errorf("state after detection = %s, want idle (stopped before delivery)", session.State())
		}
		if engine.stopCalls != 1 {
			t.Errorf("engine stop calls = %d, want 1", engine.stopCalls)
		}
	})

	t.Run("ignores empty codes and stays active", func(t *testing.T) {
		var got []string
		engine := &MockEngine{}
		session := NewScanSession(engine, DefaultEngineConfig(), func(code string) {
			got = append(got, code)
		})

		if err := session.Start(ctx); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		engine.detect("")

		if len(got) != 0 {
			t.Errorf("delivered codes = %v, want none", got)
		}
		if session.State() != domain.ScanActive {
			t.Errorf("state = %s, want still active", session.State())
		}
	})
}
