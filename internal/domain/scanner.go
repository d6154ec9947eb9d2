package domain

import "context"

// ScanState is the lifecycle state of a scan session. Stopping is an action,
// not a persisted state: a stopped session is Idle again.
type ScanState string

const (
	ScanIdle   ScanState = "idle"
	ScanActive ScanState = "active"
)

// CodeResult carries a single decoded value from the engine.
type CodeResult struct {
	Code string `json:"code"`
}

// Detection is the payload the decoding engine hands to its subscriber for
// every confident decode.
type Detection struct {
	CodeResult CodeResult `json:"codeResult"`
}

// DetectionHandler consumes decoded barcodes emitted by the engine.
type DetectionHandler func(Detection)

// EngineConfig is the fixed capture configuration a scan session initializes
// the decoding engine with.
type EngineConfig struct {
	FacingMode string
	MinWidth   int
	MinHeight  int
	Readers    []string
	// Multiple false means the engine keeps analyzing frames until the
	// caller explicitly stops it; it never auto-stops after a detection.
	Multiple bool
	Locate   bool
	Workers  int
}

// DecodingEngine is the external capability that analyzes video frames and
// emits decoded barcode strings. The engine itself is a black box; sessions
// only drive its lifecycle.
type DecodingEngine interface {
	// Init performs one-time setup. It must leave the engine uninitialized
	// on failure so a later Init can retry.
	Init(ctx context.Context, cfg EngineConfig) error
	Initialized() bool
	Start() error
	Stop() error
	// Subscribe registers the single detection handler. Engines hold at most
	// one handler; subscribing again replaces it.
	Subscribe(h DetectionHandler)
	Unsubscribe()
}
