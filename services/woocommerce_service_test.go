package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

// pagedStore fakes a WooCommerce products endpoint with fixed page sizes.
// pageSizes[i] is the number of items returned for page i+1; pages beyond
// the slice are empty.
func pagedStore(t *testing.T, pageSizes []int, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++

		if r.URL.Query().Get("consumer_key") == "" || r.URL.Query().Get("consumer_secret") == "" {
			t.Errorf("missing consumer credentials on %s", r.URL.String())
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size := 0
		if page >= 1 && page <= len(pageSizes) {
			size = pageSizes[page-1]
		}

		total := 0
		for _, n := range pageSizes {
			total += n
		}
		w.Header().Set("X-WP-Total", strconv.Itoa(total))

		items := make([]map[string]any, size)
		for i := range items {
			items[i] = map[string]any{
				"id":   (page-1)*WooPageSize + i + 1,
				"name": fmt.Sprintf("Product %d", i+1),
			}
		}
		json.NewEncoder(w).Encode(items)
	}))
}

func TestFetchAllProductsPaginatesUntilShortPage(t *testing.T) {
	requests := 0
	server := pagedStore(t, []int{100, 100, 37}, &requests)
	defer server.Close()

	client := NewWooClient(server.URL, "ck_test", "cs_test")

	products, total, err := client.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 237 {
		t.Errorf("expected 237 products, got %d", len(products))
	}
	if total != 237 {
		t.Errorf("expected total 237 from X-WP-Total, got %d", total)
	}
	if requests != 3 {
		t.Errorf("expected 3 page requests, got %d", requests)
	}
}

func TestFetchAllProductsExactMultipleNeedsEmptyPage(t *testing.T) {
	requests := 0
	server := pagedStore(t, []int{100, 100, 100}, &requests)
	defer server.Close()

	client := NewWooClient(server.URL, "ck_test", "cs_test")

	products, _, err := client.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 300 {
		t.Errorf("expected 300 products, got %d", len(products))
	}
	// the empty page 4 is what terminates the loop
	if requests != 4 {
		t.Errorf("expected 4 page requests, got %d", requests)
	}
}

func TestFetchAllProductsStopsAtPageCap(t *testing.T) {
	requests := 0
	// Every page is full; only the cap stops the loop.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		items := make([]map[string]any, WooPageSize)
		for i := range items {
			items[i] = map[string]any{"id": i + 1}
		}
		json.NewEncoder(w).Encode(items)
	}))
	defer server.Close()

	client := NewWooClient(server.URL, "ck_test", "cs_test")
	client.maxPages = 2

	products, _, err := client.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("cap termination should not be an error, got: %v", err)
	}
	if len(products) != 2*WooPageSize {
		t.Errorf("expected %d products at the cap, got %d", 2*WooPageSize, len(products))
	}
	if requests != 2 {
		t.Errorf("expected 2 page requests, got %d", requests)
	}
}

func TestFetchAllOrdersKeepsPartialOnError(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page >= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"code":"internal_server_error"}`)
			return
		}
		items := make([]map[string]any, WooPageSize)
		for i := range items {
			items[i] = map[string]any{"id": i + 1, "total": "10.00", "status": "completed"}
		}
		json.NewEncoder(w).Encode(items)
	}))
	defer server.Close()

	client := NewWooClient(server.URL, "ck_test", "cs_test")

	orders, err := client.FetchAllOrders(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected an error from the failing second page")
	}
	if len(orders) != WooPageSize {
		t.Errorf("expected the first page to be kept, got %d orders", len(orders))
	}
	if requests != 2 {
		t.Errorf("expected 2 page requests, got %d", requests)
	}
}

func TestTestConnectionRejectsBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"code":"woocommerce_rest_cannot_view"}`)
	}))
	defer server.Close()

	client := NewWooClient(server.URL, "ck_bad", "cs_bad")
	if err := client.TestConnection(context.Background()); err == nil {
		t.Fatal("expected probe to fail on 401")
	}
}

func TestGetSalesReportSortsIntervalsByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{
			"total_sales": "300.00",
			"net_sales": "300.00",
			"totals": {
				"2026-08-03": {"sales": "100.00", "orders": 2, "items": 3},
				"2026-08-01": {"sales": "150.00", "orders": 1, "items": 1},
				"2026-08-02": {"sales": "50.00", "orders": 1, "items": 2}
			}
		}]`)
	}))
	defer server.Close()

	client := NewWooClient(server.URL, "ck_test", "cs_test")

	intervals, err := client.GetSalesReport(context.Background(), mustDate(t, "2026-08-01"), mustDate(t, "2026-08-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(intervals) != 3 {
		t.Fatalf("expected 3 intervals, got %d", len(intervals))
	}
	for i, want := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		if intervals[i].Date != want {
			t.Errorf("interval %d: expected date %s, got %s", i, want, intervals[i].Date)
		}
	}
	if intervals[0].TotalSales != 150.0 {
		t.Errorf("expected 150.00 sales on the first day, got %.2f", intervals[0].TotalSales)
	}
}
