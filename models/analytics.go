package models

import "time"

// AnalyticsInterval is one day of the WooCommerce revenue report. It comes
// pre-aggregated from the reports endpoint, never computed from raw orders.
type AnalyticsInterval struct {
	Date        string  `json:"date"`
	TotalSales  float64 `json:"total_sales"`
	NetSales    float64 `json:"net_sales"`
	TotalOrders int     `json:"total_orders"`
	TotalItems  int     `json:"total_items"`
}

// TopSeller is one row of the top-N product performance report, sorted by
// revenue descending by the upstream endpoint.
type TopSeller struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// SyncRange is the date window analytics were last fetched for. It is the
// cache key for the skip check, compared by calendar day.
type SyncRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SameDay reports whether both endpoints fall on the same calendar days.
func (r SyncRange) SameDay(other SyncRange) bool {
	return sameDay(r.Start, other.Start) && sameDay(r.End, other.End)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DashboardData is the aggregate the sync orchestrator maintains per user.
// Analytics fields are range-dependent; catalog fields are range-independent
// and fetched in full.
type DashboardData struct {
	Sales      []AnalyticsInterval `json:"sales"`
	TopSellers []TopSeller         `json:"top_sellers"`
	Orders     []Order             `json:"orders"`
	Products   []Product           `json:"products"`
	Customers  []Customer          `json:"customers"`

	TotalProducts  int `json:"total_products"`
	TotalCustomers int `json:"total_customers"`
}

// DashboardSnapshot is the Redis warm-start blob, one per user id.
// It is a soft hint only, never authoritative.
type DashboardSnapshot struct {
	Timestamp time.Time     `json:"timestamp"`
	Data      DashboardData `json:"data"`
	Range     *SyncRange    `json:"range,omitempty"`
}

// SyncRequest triggers a combined analytics + catalog sync.
type SyncRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	Force bool   `json:"force"`
}

// SyncStatus reports per-flow outcomes of the last sync call. A flow error
// does not roll back fields the flow already committed.
type SyncStatus struct {
	AnalyticsSynced  bool   `json:"analytics_synced"`
	AnalyticsSkipped bool   `json:"analytics_skipped"`
	AnalyticsError   string `json:"analytics_error,omitempty"`
	CatalogSynced    bool   `json:"catalog_synced"`
	CatalogSkipped   bool   `json:"catalog_skipped"`
	CatalogError     string `json:"catalog_error,omitempty"`
}

// ABCClass is one revenue tier of the ABC classification.
type ABCClass struct {
	Class    string      `json:"class"` // A, B or C
	Count    int         `json:"count"`
	Revenue  float64     `json:"revenue"`
	Products []TopSeller `json:"products"`
}

// ABCAnalysis partitions products into tiers by cumulative revenue share:
// <=80% A, <=95% B, rest C.
type ABCAnalysis struct {
	TotalRevenue float64    `json:"total_revenue"`
	Classes      []ABCClass `json:"classes"`
}

// GADataRequest proxies a GA4 runReport call.
type GADataRequest struct {
	PropertyID string   `json:"property_id" binding:"required"`
	StartDate  string   `json:"start_date" binding:"required"`
	EndDate    string   `json:"end_date" binding:"required"`
	Metrics    []string `json:"metrics" binding:"required,min=1"`
	Dimensions []string `json:"dimensions"`
}

// GAProperty is one GA4 property from the Admin API listing.
type GAProperty struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	PropertyID  string `json:"property_id"`
}
