package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skydata/bazaar-data/internal/model"
)

const bazaarBody = `{
	"success": true,
	"lastUpdated": 1700000000000,
	"products": {
		"INK_SAC": {
			"product_id": "INK_SAC",
			"sell_summary": [{"amount": 100, "pricePerUnit": 4.2, "orders": 2}],
			"buy_summary": [{"amount": 50, "pricePerUnit": 3.1, "orders": 1}],
			"quick_status": {
				"productId": "INK_SAC",
				"sellPrice": 4.2,
				"sellVolume": 100,
				"sellMovingWeek": 700,
				"sellOrders": 2,
				"buyPrice": 3.1,
				"buyVolume": 50,
				"buyMovingWeek": 350,
				"buyOrders": 1
			}
		}
	}
}`

func TestGetBazaar(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("API-Key")
		w.Write([]byte(bazaarBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithAPIKey("test-key"))
	snap, err := c.GetBazaar(context.Background())
	if err != nil {
		t.Fatalf("GetBazaar() error: %v", err)
	}

	if gotPath != "/skyblock/bazaar" {
		t.Errorf("request path = %q, want /skyblock/bazaar", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("API-Key header = %q, want test-key", gotKey)
	}
	if snap.LastUpdated != 1700000000000 {
		t.Errorf("LastUpdated = %d, want 1700000000000", snap.LastUpdated)
	}
	if got := snap.Products["INK_SAC"].SellSummary[0].PricePerUnit.Raw(); got != 420 {
		t.Errorf("PricePerUnit.Raw() = %d, want 420", got)
	}
}

func TestGetBazaarHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetBazaar(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("GetBazaar() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
}

func TestGetBazaarSchemaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetBazaar(context.Background())

	var schemaErr *model.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("GetBazaar() error = %v, want *model.SchemaError", err)
	}
}

func TestGetBazaarContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bazaarBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	if _, err := c.GetBazaar(ctx); err == nil {
		t.Error("GetBazaar() = nil error with canceled context")
	}
}
