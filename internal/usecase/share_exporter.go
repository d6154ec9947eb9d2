package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/greenscan/backend/internal/domain"
)

// ShareTitle is the title attached to every shared eco-check
const ShareTitle = "GreenScan Eco-Check"

// ShareExporter serializes a displayed result into shareable text and hands
// it to the configured delivery channels.
type ShareExporter struct {
	senders []domain.ShareSender
}

// NewShareExporter creates an exporter. Senders are tried in the order
// given, most preferred first.
func NewShareExporter(senders ...domain.ShareSender) *ShareExporter {
	return &ShareExporter{senders: senders}
}

// ExportText renders the fixed share template for a view model.
func (e *ShareExporter) ExportText(view ViewModel) string {
	return fmt.Sprintf("GreenScan Eco Check:\n%s\nEco-Score: %s\n%s",
		strings.Join(view.Details, "\n"),
		view.ScoreLabel,
		view.Explanation,
	)
}

// Deliver exports the view and attempts each sender in preference order,
// stopping at the first success. When every channel fails, or none is
// configured, it returns ErrShareUnavailable — a terminal failure, never
// retried.
func (e *ShareExporter) Deliver(ctx context.Context, view ViewModel) error {
	text := e.ExportText(view)

	for _, sender := range e.senders {
		if err := sender.Send(ctx, ShareTitle, text); err != nil {
			log.Printf("[SHARE] Sender failed: %v", err)
			continue
		}
		return nil
	}

	return domain.ErrShareUnavailable
}
