package domain

import "errors"

var (
	// ErrProductNotFound is returned when the product database has no entry
	// for a barcode
	ErrProductNotFound = errors.New("product not found in Open Food Facts")

	// ErrLookupTransport is returned when the product database request fails
	// at the transport level (network error, timeout, malformed JSON)
	ErrLookupTransport = errors.New("product lookup request failed")

	// ErrInvalidBarcode is returned when a barcode is empty after trimming
	ErrInvalidBarcode = errors.New("barcode must not be empty")

	// ErrCameraInit is returned when the decoding engine fails to initialize
	// (e.g. camera permission denied)
	ErrCameraInit = errors.New("camera initialization failed")

	// ErrShareUnavailable is returned when no share capability could deliver
	// the exported text
	ErrShareUnavailable = errors.New("sharing failed")

	// ErrRateLimited is returned when a client exceeds the per-IP rate limit
	ErrRateLimited = errors.New("rate limit exceeded")
)
