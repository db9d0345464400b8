package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/noord-hq/noord-backend/models"
)

const (
	// WooPageSize is the fixed per_page value for collection fetches.
	WooPageSize = 100

	// DefaultMaxPages caps the pagination loop. A store that keeps
	// returning full pages terminates here instead of looping forever.
	DefaultMaxPages = 50
)

// WooClient talks to one store's WooCommerce REST API using consumer
// key/secret query auth. It is stateless; build one per request from the
// user's stored connection.
type WooClient struct {
	storeURL       string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
	maxPages       int
}

// NewWooClient creates a client for the given store credentials.
func NewWooClient(storeURL, consumerKey, consumerSecret string) *WooClient {
	maxPages := DefaultMaxPages
	if v := os.Getenv("WOO_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxPages = n
		}
	}

	return &WooClient{
		storeURL:       strings.TrimRight(storeURL, "/"),
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxPages: maxPages,
	}
}

func (w *WooClient) doRequest(ctx context.Context, method, namespace, path string, query url.Values, body any) ([]byte, http.Header, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("consumer_key", w.consumerKey)
	query.Set("consumer_secret", w.consumerSecret)

	fullURL := fmt.Sprintf("%s/wp-json/%s%s?%s", w.storeURL, namespace, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, resp.Header, fmt.Errorf("WooCommerce API error: %s - %s", resp.Status, string(respBody))
	}

	return respBody, resp.Header, nil
}

// TestConnection verifies the stored credentials with a cheap single-item
// products call.
func (w *WooClient) TestConnection(ctx context.Context) error {
	q := url.Values{}
	q.Set("per_page", "1")
	_, _, err := w.doRequest(ctx, "GET", "wc/v3", "/products", q, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to WooCommerce: %w", err)
	}
	return nil
}

// ── Paginated collection fetches ─────────────────────────────────────────────
// Fixed page size, page=1,2,3... until a short page. Any request error keeps
// the accumulation up to that point; the cap terminates runaway loops.

// GetOrdersPage fetches one page of orders, optionally range-restricted.
func (w *WooClient) GetOrdersPage(ctx context.Context, page int, after, before *time.Time) ([]models.Order, http.Header, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(WooPageSize))
	q.Set("page", strconv.Itoa(page))
	if after != nil {
		q.Set("after", after.Format("2006-01-02T15:04:05"))
	}
	if before != nil {
		q.Set("before", before.Format("2006-01-02T15:04:05"))
	}

	respBody, headers, err := w.doRequest(ctx, "GET", "wc/v3", "/orders", q, nil)
	if err != nil {
		return nil, headers, err
	}

	var orders []models.Order
	if err := json.Unmarshal(respBody, &orders); err != nil {
		return nil, headers, fmt.Errorf("failed to decode orders page %d: %w", page, err)
	}
	return orders, headers, nil
}

// FetchAllOrders paginates orders to exhaustion within the optional range.
func (w *WooClient) FetchAllOrders(ctx context.Context, after, before *time.Time) ([]models.Order, error) {
	var all []models.Order
	for page := 1; ; page++ {
		if page > w.maxPages {
			log.Printf("[woo.orders] WARN page cap reached pages=%d accumulated=%d", w.maxPages, len(all))
			return all, nil
		}
		batch, _, err := w.GetOrdersPage(ctx, page, after, before)
		if err != nil {
			// partial accumulation is kept; caller decides what to commit
			return all, err
		}
		all = append(all, batch...)
		if len(batch) < WooPageSize {
			return all, nil
		}
	}
}

// GetProductsPage fetches one page of products.
func (w *WooClient) GetProductsPage(ctx context.Context, page int) ([]models.Product, http.Header, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(WooPageSize))
	q.Set("page", strconv.Itoa(page))

	respBody, headers, err := w.doRequest(ctx, "GET", "wc/v3", "/products", q, nil)
	if err != nil {
		return nil, headers, err
	}

	var products []models.Product
	if err := json.Unmarshal(respBody, &products); err != nil {
		return nil, headers, fmt.Errorf("failed to decode products page %d: %w", page, err)
	}
	return products, headers, nil
}

// FetchAllProducts paginates the full catalog. The total count comes from
// the X-WP-Total header of the first page.
func (w *WooClient) FetchAllProducts(ctx context.Context) ([]models.Product, int, error) {
	var all []models.Product
	total := 0
	for page := 1; ; page++ {
		if page > w.maxPages {
			log.Printf("[woo.products] WARN page cap reached pages=%d accumulated=%d", w.maxPages, len(all))
			return all, total, nil
		}
		batch, headers, err := w.GetProductsPage(ctx, page)
		if err != nil {
			return all, total, err
		}
		if page == 1 {
			total = headerTotal(headers)
		}
		all = append(all, batch...)
		if len(batch) < WooPageSize {
			return all, total, nil
		}
	}
}

// GetCustomersPage fetches one page of customers.
func (w *WooClient) GetCustomersPage(ctx context.Context, page int) ([]models.Customer, http.Header, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(WooPageSize))
	q.Set("page", strconv.Itoa(page))

	respBody, headers, err := w.doRequest(ctx, "GET", "wc/v3", "/customers", q, nil)
	if err != nil {
		return nil, headers, err
	}

	var customers []models.Customer
	if err := json.Unmarshal(respBody, &customers); err != nil {
		return nil, headers, fmt.Errorf("failed to decode customers page %d: %w", page, err)
	}
	return customers, headers, nil
}

// FetchAllCustomers paginates the full customer list.
func (w *WooClient) FetchAllCustomers(ctx context.Context) ([]models.Customer, int, error) {
	var all []models.Customer
	total := 0
	for page := 1; ; page++ {
		if page > w.maxPages {
			log.Printf("[woo.customers] WARN page cap reached pages=%d accumulated=%d", w.maxPages, len(all))
			return all, total, nil
		}
		batch, headers, err := w.GetCustomersPage(ctx, page)
		if err != nil {
			return all, total, err
		}
		if page == 1 {
			total = headerTotal(headers)
		}
		all = append(all, batch...)
		if len(batch) < WooPageSize {
			return all, total, nil
		}
	}
}

func headerTotal(headers http.Header) int {
	if headers == nil {
		return 0
	}
	n, _ := strconv.Atoi(headers.Get("X-WP-Total"))
	return n
}

// ── Pre-aggregated reports ───────────────────────────────────────────────────

// GetSalesReport fetches the daily revenue/order report for a date range.
func (w *WooClient) GetSalesReport(ctx context.Context, start, end time.Time) ([]models.AnalyticsInterval, error) {
	q := url.Values{}
	q.Set("date_min", start.Format("2006-01-02"))
	q.Set("date_max", end.Format("2006-01-02"))
	q.Set("period", "custom")

	respBody, _, err := w.doRequest(ctx, "GET", "wc/v3", "/reports/sales", q, nil)
	if err != nil {
		return nil, err
	}

	var report []struct {
		TotalSales string `json:"total_sales"`
		NetSales   string `json:"net_sales"`
		Totals     map[string]struct {
			Sales  string `json:"sales"`
			Orders int    `json:"orders"`
			Items  int    `json:"items"`
		} `json:"totals"`
	}

	if err := json.Unmarshal(respBody, &report); err != nil {
		return nil, fmt.Errorf("failed to decode sales report: %w", err)
	}
	if len(report) == 0 {
		return nil, nil
	}

	intervals := make([]models.AnalyticsInterval, 0, len(report[0].Totals))
	for date, t := range report[0].Totals {
		sales, _ := strconv.ParseFloat(t.Sales, 64)
		intervals = append(intervals, models.AnalyticsInterval{
			Date:        date,
			TotalSales:  sales,
			NetSales:    sales,
			TotalOrders: t.Orders,
			TotalItems:  t.Items,
		})
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Date < intervals[j].Date })

	return intervals, nil
}

// GetTopSellers fetches the product performance report sorted by revenue
// descending (wc-analytics namespace).
func (w *WooClient) GetTopSellers(ctx context.Context, start, end time.Time, limit int) ([]models.TopSeller, error) {
	q := url.Values{}
	q.Set("after", start.Format("2006-01-02T15:04:05"))
	q.Set("before", end.Format("2006-01-02T15:04:05"))
	q.Set("orderby", "net_revenue")
	q.Set("order", "desc")
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("extended_info", "true")

	respBody, _, err := w.doRequest(ctx, "GET", "wc-analytics", "/reports/products", q, nil)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ProductID    int     `json:"product_id"`
		ItemsSold    int     `json:"items_sold"`
		NetRevenue   float64 `json:"net_revenue"`
		ExtendedInfo struct {
			Name string `json:"name"`
		} `json:"extended_info"`
	}

	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode top sellers: %w", err)
	}

	sellers := make([]models.TopSeller, 0, len(rows))
	for _, r := range rows {
		sellers = append(sellers, models.TopSeller{
			ProductID: r.ProductID,
			Name:      r.ExtendedInfo.Name,
			Quantity:  r.ItemsSold,
			Revenue:   r.NetRevenue,
		})
	}
	return sellers, nil
}
