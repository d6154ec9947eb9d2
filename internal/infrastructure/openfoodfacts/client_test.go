package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/greenscan/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://world.openfoodfacts.org", "GreenScan/1.0", 0)

	assert.NotNil(t, client)
	assert.Equal(t, "https://world.openfoodfacts.org", client.baseURL)
	assert.Equal(t, "GreenScan/1.0", client.userAgent)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestFetchProduct_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/3017620422003", r.URL.Path)
		assert.Equal(t, requestFields, r.URL.Query().Get("fields"))
		assert.Equal(t, "GreenScan/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Nutella",
				"brands": "Ferrero",
				"ecoscore_grade": "d",
				"labels_tags": ["gluten-free", "vegetarian"],
				"ingredients_text": "Sugar, palm oil, hazelnuts 13%, skimmed milk powder 8.7%, fat-reduced cocoa"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "GreenScan/1.0", 0)
	product, err := client.FetchProduct(context.Background(), "3017620422003")

	require.NoError(t, err)
	assert.Equal(t, "3017620422003", product.Barcode)
	assert.Equal(t, "Nutella", product.Name)
	assert.Equal(t, "Ferrero", product.Brand)
	assert.Equal(t, domain.GradeD, product.Grade)
	assert.Equal(t, []domain.LabelTag{"gluten-free", "vegetarian"}, product.Labels)
	assert.Equal(t, "Sugar, palm oil, hazelnuts 13%, skimmed milk powder 8.7%, fa...", product.IngredientsSummary)
}

func TestFetchProduct_SparseRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 1, "product": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "GreenScan/1.0", 0)
	product, err := client.FetchProduct(context.Background(), "123")

	require.NoError(t, err)
	assert.Equal(t, "Unknown", product.Name)
	assert.Equal(t, "Unknown", product.Brand)
	assert.Equal(t, domain.GradeE, product.Grade)
	assert.Empty(t, product.Labels)
	assert.Equal(t, "N/A", product.IngredientsSummary)
}

func TestFetchProduct_LabelsNotAList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 1, "product": {"product_name": "Juice", "labels_tags": "organic"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "GreenScan/1.0", 0)
	product, err := client.FetchProduct(context.Background(), "123")

	require.NoError(t, err)
	assert.Empty(t, product.Labels)
}

func TestFetchProduct_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"status zero", `{"status": 0, "status_verbose": "product not found"}`},
		{"missing product payload", `{"status": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "GreenScan/1.0", 0)
			_, err := client.FetchProduct(context.Background(), "0000000000000")

			assert.ErrorIs(t, err, domain.ErrProductNotFound)
		})
	}
}

func TestFetchProduct_NotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "GreenScan/1.0", 0)
	_, err := client.FetchProduct(context.Background(), "123")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFetchProduct_TransportErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "GreenScan/1.0", 0)
		_, err := client.FetchProduct(context.Background(), "123")
		assert.ErrorIs(t, err, domain.ErrLookupTransport)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": 1, "product"`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "GreenScan/1.0", 0)
		_, err := client.FetchProduct(context.Background(), "123")
		assert.ErrorIs(t, err, domain.ErrLookupTransport)
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, "GreenScan/1.0", 0)
		_, err := client.FetchProduct(context.Background(), "123")
		assert.ErrorIs(t, err, domain.ErrLookupTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(server.URL, "GreenScan/1.0", 50*time.Millisecond)
		_, err := client.FetchProduct(context.Background(), "123")
		assert.ErrorIs(t, err, domain.ErrLookupTransport)
	})
}
