package datasync

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/noord-hq/noord-backend/models"
)

// fakeFetcher counts calls and returns canned data, with injectable
// per-operation failures.
type fakeFetcher struct {
	salesCalls     int
	topSellerCalls int
	orderCalls     int
	productCalls   int
	customerCalls  int

	salesErr     error
	topSellerErr error
	productsErr  error

	sales      []models.AnalyticsInterval
	topSellers []models.TopSeller
}

func (f *fakeFetcher) GetSalesReport(ctx context.Context, start, end time.Time) ([]models.AnalyticsInterval, error) {
	f.salesCalls++
	if f.salesErr != nil {
		return nil, f.salesErr
	}
	if f.sales != nil {
		return f.sales, nil
	}
	return []models.AnalyticsInterval{
		{Date: start.Format("2006-01-02"), TotalSales: 100, TotalOrders: 2},
	}, nil
}

func (f *fakeFetcher) GetTopSellers(ctx context.Context, start, end time.Time, limit int) ([]models.TopSeller, error) {
	f.topSellerCalls++
	if f.topSellerErr != nil {
		return nil, f.topSellerErr
	}
	if f.topSellers != nil {
		return f.topSellers, nil
	}
	return []models.TopSeller{{ProductID: 1, Name: "Widget", Quantity: 3, Revenue: 90}}, nil
}

func (f *fakeFetcher) GetOrdersPage(ctx context.Context, page int, after, before *time.Time) ([]models.Order, http.Header, error) {
	f.orderCalls++
	return []models.Order{{ID: 1, Status: "completed", Total: "45.00"}}, nil, nil
}

func (f *fakeFetcher) FetchAllProducts(ctx context.Context) ([]models.Product, int, error) {
	f.productCalls++
	if f.productsErr != nil {
		return []models.Product{{ID: 1, Name: "Widget"}}, 0, f.productsErr
	}
	return []models.Product{{ID: 1, Name: "Widget"}, {ID: 2, Name: "Gadget"}}, 2, nil
}

func (f *fakeFetcher) FetchAllCustomers(ctx context.Context) ([]models.Customer, int, error) {
	f.customerCalls++
	return []models.Customer{{ID: 1, Email: "a@b.com"}}, 1, nil
}

func augustRange(t *testing.T) models.SyncRange {
	t.Helper()
	start, _ := time.Parse("2006-01-02", "2026-08-01")
	end, _ := time.Parse("2006-01-02", "2026-08-07")
	return models.SyncRange{Start: start, End: end}
}

func TestSyncAllFirstRunSyncsBothFlows(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{}

	status := store.SyncAll(context.Background(), fetcher, "user-1", augustRange(t), false)

	if !status.AnalyticsSynced || status.AnalyticsSkipped || status.AnalyticsError != "" {
		t.Errorf("expected analytics synced cleanly, got %+v", status)
	}
	if !status.CatalogSynced || status.CatalogSkipped || status.CatalogError != "" {
		t.Errorf("expected catalog synced cleanly, got %+v", status)
	}

	data, rng, syncedAt := store.Dashboard("user-1")
	if len(data.Sales) != 1 || len(data.TopSellers) != 1 || len(data.Orders) != 1 {
		t.Errorf("analytics fields not committed: %+v", data)
	}
	if len(data.Products) != 2 || data.TotalProducts != 2 || data.TotalCustomers != 1 {
		t.Errorf("catalog fields not committed: %+v", data)
	}
	if rng == nil || !rng.SameDay(augustRange(t)) {
		t.Errorf("expected last range recorded, got %v", rng)
	}
	if syncedAt.IsZero() {
		t.Error("expected syncedAt to be set")
	}
}

func TestSyncAllSecondCallSkipsWithoutNetwork(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{}
	rng := augustRange(t)

	store.SyncAll(context.Background(), fetcher, "user-1", rng, false)
	status := store.SyncAll(context.Background(), fetcher, "user-1", rng, false)

	if !status.AnalyticsSkipped || !status.CatalogSkipped {
		t.Errorf("expected both flows skipped, got %+v", status)
	}
	if fetcher.salesCalls != 1 || fetcher.topSellerCalls != 1 || fetcher.orderCalls != 1 {
		t.Errorf("analytics refetched on skip: sales=%d top=%d orders=%d",
			fetcher.salesCalls, fetcher.topSellerCalls, fetcher.orderCalls)
	}
	if fetcher.productCalls != 1 || fetcher.customerCalls != 1 {
		t.Errorf("catalog refetched on skip: products=%d customers=%d",
			fetcher.productCalls, fetcher.customerCalls)
	}
}

func TestSyncAllSkipComparesCalendarDayNotInstant(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{}
	rng := augustRange(t)

	store.SyncAll(context.Background(), fetcher, "user-1", rng, false)

	// Same calendar days at a different time of day still skips
	shifted := models.SyncRange{
		Start: rng.Start.Add(5 * time.Hour),
		End:   rng.End.Add(9 * time.Hour),
	}
	status := store.SyncAll(context.Background(), fetcher, "user-1", shifted, false)
	if !status.AnalyticsSkipped {
		t.Errorf("expected calendar-day match to skip, got %+v", status)
	}

	// A different day re-syncs
	other := models.SyncRange{Start: rng.Start.AddDate(0, 0, -7), End: rng.End}
	status = store.SyncAll(context.Background(), fetcher, "user-1", other, false)
	if !status.AnalyticsSynced {
		t.Errorf("expected new range to sync, got %+v", status)
	}
	if fetcher.salesCalls != 2 {
		t.Errorf("expected 2 sales fetches, got %d", fetcher.salesCalls)
	}
}

func TestSyncAllForceBypassesSkip(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{}
	rng := augustRange(t)

	store.SyncAll(context.Background(), fetcher, "user-1", rng, false)
	status := store.SyncAll(context.Background(), fetcher, "user-1", rng, true)

	if !status.AnalyticsSynced || !status.CatalogSynced {
		t.Errorf("expected force to re-sync both flows, got %+v", status)
	}
	if fetcher.salesCalls != 2 || fetcher.productCalls != 2 {
		t.Errorf("expected refetch under force: sales=%d products=%d",
			fetcher.salesCalls, fetcher.productCalls)
	}
}

func TestAnalyticsFlowCommitsStepsBeforeFailure(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{topSellerErr: errors.New("report timeout")}
	rng := augustRange(t)

	status := store.SyncAll(context.Background(), fetcher, "user-1", rng, false)

	if !status.AnalyticsSynced || status.AnalyticsError == "" {
		t.Errorf("expected partial analytics sync with error, got %+v", status)
	}

	data, lastRng, _ := store.Dashboard("user-1")
	if len(data.Sales) != 1 {
		t.Errorf("sales committed before the failure should survive, got %d", len(data.Sales))
	}
	if len(data.TopSellers) != 0 {
		t.Errorf("failed step must not commit, got %d top sellers", len(data.TopSellers))
	}
	// No range recorded means the next call retries instead of skipping
	if lastRng != nil {
		t.Errorf("expected no last range after a failed flow, got %v", lastRng)
	}

	fetcher.topSellerErr = nil
	status = store.SyncAll(context.Background(), fetcher, "user-1", rng, false)
	if !status.AnalyticsSynced || status.AnalyticsError != "" {
		t.Errorf("expected retry to complete, got %+v", status)
	}
}

func TestAnalyticsErrorDoesNotBlockCatalog(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{salesErr: errors.New("store unreachable")}

	status := store.SyncAll(context.Background(), fetcher, "user-1", augustRange(t), false)

	if status.AnalyticsSynced || status.AnalyticsError == "" {
		t.Errorf("expected analytics failure, got %+v", status)
	}
	if !status.CatalogSynced || status.CatalogError != "" {
		t.Errorf("catalog flow should succeed independently, got %+v", status)
	}

	data, _, _ := store.Dashboard("user-1")
	if len(data.Products) != 2 {
		t.Errorf("expected catalog committed, got %d products", len(data.Products))
	}
}

func TestCatalogKeepsPartialProductsOnError(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{productsErr: errors.New("page 3 failed")}

	status := store.SyncAll(context.Background(), fetcher, "user-1", augustRange(t), false)

	if status.CatalogError == "" {
		t.Errorf("expected catalog error, got %+v", status)
	}
	if fetcher.customerCalls != 0 {
		t.Error("customer fetch should not run after a product failure")
	}

	data, _, _ := store.Dashboard("user-1")
	if len(data.Products) != 1 {
		t.Errorf("expected the partial product page kept, got %d", len(data.Products))
	}
}

func TestResetDropsState(t *testing.T) {
	store := NewStore()
	fetcher := &fakeFetcher{}

	store.SyncAll(context.Background(), fetcher, "user-1", augustRange(t), false)
	store.Reset("user-1")

	data, rng, syncedAt := store.Dashboard("user-1")
	if len(data.Sales) != 0 || rng != nil || !syncedAt.IsZero() {
		t.Errorf("expected empty state after reset, got %+v rng=%v", data, rng)
	}
}
