package datasync

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/noord-hq/noord-backend/models"
)

// topSellerLimit is the top-N size of the product performance report.
const topSellerLimit = 10

// Fetcher is the slice of the WooCommerce client the orchestrator needs.
// *services.WooClient satisfies it; tests inject an httptest-backed fake.
type Fetcher interface {
	GetSalesReport(ctx context.Context, start, end time.Time) ([]models.AnalyticsInterval, error)
	GetTopSellers(ctx context.Context, start, end time.Time, limit int) ([]models.TopSeller, error)
	GetOrdersPage(ctx context.Context, page int, after, before *time.Time) ([]models.Order, http.Header, error)
	FetchAllProducts(ctx context.Context) ([]models.Product, int, error)
	FetchAllCustomers(ctx context.Context) ([]models.Customer, int, error)
}

// SyncAll runs the analytics and catalog flows concurrently for one user.
// Invocations for the same user are serialized: a second call blocks until
// the first finishes, then normally short-circuits via the cache-skip
// checks. Each flow commits the fields it managed to fetch even when a
// later step of that flow fails.
func (s *Store) SyncAll(ctx context.Context, f Fetcher, userID string, rng models.SyncRange, force bool) models.SyncStatus {
	st := s.state(userID)
	st.syncMu.Lock()
	defer st.syncMu.Unlock()

	var status models.SyncStatus
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		synced, skipped, err := s.syncAnalytics(ctx, f, st, userID, rng, force)
		status.AnalyticsSynced = synced
		status.AnalyticsSkipped = skipped
		if err != nil {
			status.AnalyticsError = err.Error()
		}
	}()

	go func() {
		defer wg.Done()
		synced, skipped, err := s.syncCatalog(ctx, f, st, userID, force)
		status.CatalogSynced = synced
		status.CatalogSkipped = skipped
		if err != nil {
			status.CatalogError = err.Error()
		}
	}()

	wg.Wait()
	return status
}

// SyncAnalytics runs only the date-ranged flow (used by the range picker).
func (s *Store) SyncAnalytics(ctx context.Context, f Fetcher, userID string, rng models.SyncRange, force bool) (bool, bool, error) {
	st := s.state(userID)
	st.syncMu.Lock()
	defer st.syncMu.Unlock()
	return s.syncAnalytics(ctx, f, st, userID, rng, force)
}

// SyncCatalog runs only the full product/customer flow.
func (s *Store) SyncCatalog(ctx context.Context, f Fetcher, userID string, force bool) (bool, bool, error) {
	st := s.state(userID)
	st.syncMu.Lock()
	defer st.syncMu.Unlock()
	return s.syncCatalog(ctx, f, st, userID, force)
}

// syncAnalytics fetches the daily sales report, the top-seller report and
// the first page of range-restricted orders, replacing only those fields.
// Skips when the requested range equals the last synced range by calendar
// day and sales are already loaded.
func (s *Store) syncAnalytics(ctx context.Context, f Fetcher, st *userState, userID string, rng models.SyncRange, force bool) (synced, skipped bool, err error) {
	st.mu.Lock()
	alreadyLoaded := st.lastRange != nil && st.lastRange.SameDay(rng) && len(st.data.Sales) > 0
	st.mu.Unlock()

	if alreadyLoaded && !force {
		log.Printf("[sync.analytics] skip user=%s range already loaded", userID)
		return false, true, nil
	}

	log.Printf("[sync.analytics] start user=%s start=%s end=%s force=%v",
		userID, rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"), force)

	sales, err := f.GetSalesReport(ctx, rng.Start, rng.End)
	if err != nil {
		log.Printf("[sync.analytics] ERROR sales report user=%s err=%v", userID, err)
		return false, false, err
	}
	st.mu.Lock()
	st.data.Sales = sales
	st.mu.Unlock()

	topSellers, err := f.GetTopSellers(ctx, rng.Start, rng.End, topSellerLimit)
	if err != nil {
		log.Printf("[sync.analytics] ERROR top sellers user=%s err=%v", userID, err)
		return true, false, err
	}
	st.mu.Lock()
	st.data.TopSellers = topSellers
	st.mu.Unlock()

	after, before := rng.Start, rng.End
	orders, _, err := f.GetOrdersPage(ctx, 1, &after, &before)
	if err != nil {
		log.Printf("[sync.analytics] ERROR orders page user=%s err=%v", userID, err)
		return true, false, err
	}

	st.mu.Lock()
	st.data.Orders = orders
	r := rng
	st.lastRange = &r
	st.syncedAt = time.Now()
	st.mu.Unlock()

	log.Printf("[sync.analytics] done user=%s days=%d top_sellers=%d orders=%d",
		userID, len(sales), len(topSellers), len(orders))
	return true, false, nil
}

// syncCatalog fetches the complete product and customer lists, then writes
// the Redis snapshot. Skips when a product list is already loaded. A fetch
// error commits the partial accumulation and ends the flow early.
func (s *Store) syncCatalog(ctx context.Context, f Fetcher, st *userState, userID string, force bool) (synced, skipped bool, err error) {
	st.mu.Lock()
	alreadyLoaded := len(st.data.Products) > 0
	st.mu.Unlock()

	if alreadyLoaded && !force {
		log.Printf("[sync.catalog] skip user=%s catalog already loaded", userID)
		return false, true, nil
	}

	log.Printf("[sync.catalog] start user=%s force=%v", userID, force)

	products, totalProducts, err := f.FetchAllProducts(ctx)
	if err != nil {
		log.Printf("[sync.catalog] ERROR products user=%s fetched=%d err=%v", userID, len(products), err)
		st.mu.Lock()
		st.data.Products = products
		st.data.TotalProducts = totalProducts
		st.mu.Unlock()
		return len(products) > 0, false, err
	}
	st.mu.Lock()
	st.data.Products = products
	st.data.TotalProducts = totalProducts
	st.mu.Unlock()

	customers, totalCustomers, err := f.FetchAllCustomers(ctx)
	if err != nil {
		log.Printf("[sync.catalog] ERROR customers user=%s fetched=%d err=%v", userID, len(customers), err)
		st.mu.Lock()
		st.data.Customers = customers
		st.data.TotalCustomers = totalCustomers
		st.mu.Unlock()
		return true, false, err
	}

	st.mu.Lock()
	st.data.Customers = customers
	st.data.TotalCustomers = totalCustomers
	st.syncedAt = time.Now()
	snap := models.DashboardSnapshot{
		Timestamp: st.syncedAt,
		Data:      st.data,
		Range:     st.lastRange,
	}
	st.mu.Unlock()

	saveSnapshot(userID, snap)

	log.Printf("[sync.catalog] done user=%s products=%d customers=%d", userID, len(products), len(customers))
	return true, false, nil
}
