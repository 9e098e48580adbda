package ngx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const boardFixture = `[
  {
    "Symbol": "GTCO",
    "Company2": "Guaranty Trust Holding Company Plc",
    "ClosePrice": 42.15,
    "MarketCapitalization": 1234567890.5
  },
  {
    "Symbol": "UBA",
    "Company2": "United Bank for Africa Plc",
    "MarketCapitalization": 987654321
  },
  {
    "Company2": "A row with no symbol"
  }
]`

// newTestClient points a Client at a test server, bypassing the disk cache.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{HTTP: srv.Client(), BaseURL: srv.URL}
}

func TestFetch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(boardFixture))
	})

	fund, err := c.Fetch(context.Background(), []string{"GTCO", "UBA", "GHOST"}, "NGN")
	if err != nil {
		t.Fatalf("Fetch() returned unexpected error: %v", err)
	}

	// GHOST is not on the board: requested tickers shrink to two records.
	if len(fund) != 2 {
		t.Fatalf("Fetch() returned %d equities, want 2", len(fund))
	}

	gtco := fund[0]
	if gtco.Ticker != "GTCO" {
		t.Errorf("Ticker = %q, want GTCO", gtco.Ticker)
	}
	if gtco.Name != "Guaranty Trust Holding Company Plc" {
		t.Errorf("Name = %q, want the company title", gtco.Name)
	}
	if got := gtco.Price.AsFloat(); got != 42.15 {
		t.Errorf("Price = %v, want 42.15", got)
	}
	if got := gtco.MarketCap.InexactFloat64(); got != 1234567890.5 {
		t.Errorf("MarketCap = %v, want 1234567890.5", got)
	}

	// a missing price degrades to zero, exactly like a blank board cell.
	if uba := fund[1]; !uba.Price.IsZero() {
		t.Errorf("Price = %s, want zero when the board has no price", uba.Price)
	}
}

func TestFetch_NoTickerFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	if fund, err := c.Fetch(context.Background(), []string{"GTCO"}, "NGN"); err == nil {
		t.Fatalf("Fetch() = %v, want an error when nothing matches", fund)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "board offline", http.StatusInternalServerError)
	})
	if _, err := c.Fetch(context.Background(), []string{"GTCO"}, "NGN"); err == nil {
		t.Fatal("Fetch() = nil error, want an error on a 500 response")
	}
}

func TestFetch_CancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(boardFixture))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Fetch(ctx, []string{"GTCO"}, "NGN"); err == nil {
		t.Fatal("Fetch() = nil error, want an error on a cancelled context")
	}
}
