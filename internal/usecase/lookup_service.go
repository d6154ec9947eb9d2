package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/greenscan/backend/internal/domain"
)

// LookupService resolves barcodes to normalized product records
type LookupService struct {
	source domain.ProductSource
}

// NewLookupService creates a new lookup service with its product source
func NewLookupService(source domain.ProductSource) *LookupService {
	return &LookupService{source: source}
}

// Lookup fetches the product for a barcode. The barcode is trimmed first;
// an empty result fails with ErrInvalidBarcode before any request is made.
// Each call owns its own Product construction end to end, so concurrent
// lookups for different barcodes never share state.
func (s *LookupService) Lookup(ctx context.Context, barcode string) (*domain.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidBarcode
	}

	product, err := s.source.FetchProduct(ctx, barcode)
	if err != nil {
		log.Printf("[LOOKUP] Barcode %q failed: %v", barcode, err)
		return nil, err
	}

	log.Printf("[LOOKUP] Barcode %q resolved: grade=%s, labels=%d", barcode, product.Grade, len(product.Labels))
	return product, nil
}
