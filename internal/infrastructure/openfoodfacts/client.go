package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/greenscan/backend/internal/domain"
	"golang.org/x/time/rate"
)

// requestFields restricts the response to the fields the verdict pipeline
// consumes. Everything else in the record is dead weight on the wire.
const requestFields = "product_name,brands,ecoscore_grade,labels_tags,ingredients_text"

// Client handles communication with the Open Food Facts product API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Open Food Facts API client
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	// Open Food Facts asks for at most 100 product queries per minute
	limiter := rate.NewLimiter(rate.Limit(100.0/60.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// productEnvelope is the raw v2 product response. The payload is
// community-curated and frequently incomplete, so every field is optional.
type productEnvelope struct {
	Status  int             `json:"status"`
	Product *productPayload `json:"product"`
}

type productPayload struct {
	ProductName     string          `json:"product_name"`
	Brands          string          `json:"brands"`
	EcoscoreGrade   string          `json:"ecoscore_grade"`
	LabelsTags      json.RawMessage `json:"labels_tags"`
	IngredientsText string          `json:"ingredients_text"`
}

// FetchProduct retrieves and normalizes the product record for a barcode.
// It is the single boundary where the response's optionality is resolved:
// callers always receive a fully-defaulted Product or a typed error.
func (c *Client) FetchProduct(ctx context.Context, barcode string) (*domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupTransport, err)
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s?%s",
		c.baseURL,
		url.PathEscape(barcode),
		url.Values{"fields": {requestFields}}.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[OFF] Request error for barcode %q: %v", barcode, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[OFF] API error for barcode %q - Status: %d, Body: %s", barcode, resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrLookupTransport, resp.StatusCode)
	}

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Printf("[OFF] JSON decode error for barcode %q: %v", barcode, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupTransport, err)
	}

	if envelope.Status != 1 || envelope.Product == nil {
		log.Printf("[OFF] No product found for barcode %q", barcode)
		return nil, domain.ErrProductNotFound
	}

	return normalizeProduct(barcode, envelope.Product), nil
}
