package domain

import "context"

// ProductSource defines the interface for fetching a normalized product
// record by barcode from the remote product database
type ProductSource interface {
	FetchProduct(ctx context.Context, barcode string) (*Product, error)
}

// ShareSender defines a single delivery channel for an exported eco-check
// (native share sheet, clipboard, webhook). Senders are tried in preference
// order; delivery is terminal either way, never retried.
type ShareSender interface {
	Send(ctx context.Context, title, text string) error
}
