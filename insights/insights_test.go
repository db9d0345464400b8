package insights

import (
	"testing"
	"time"

	"github.com/noord-hq/noord-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func orderAt(hour int, day time.Time, total, state string) models.Order {
	created := time.Date(day.Year(), day.Month(), day.Day(), hour, 30, 0, 0, time.UTC)
	return models.Order{
		Status:      "completed",
		Total:       total,
		DateCreated: models.WooTime{Time: created},
		Billing:     models.Billing{State: state},
	}
}

// monday is 2026-08-24.
var monday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func findInsight(list []models.Insight, id string) *models.Insight {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func TestBuildAlertsNoProblemsNoAlerts(t *testing.T) {
	orders := []models.Order{
		orderAt(10, monday, "150.00", "SP"),
	}
	products := []models.Product{
		{Name: "Caneca", Status: "publish", StockQuantity: intPtr(20)},
	}

	alerts := BuildAlerts(orders, products)
	assert.Empty(t, alerts)
}

func TestBuildAlertsStockBucketsAreMutuallyExclusive(t *testing.T) {
	products := []models.Product{
		{Name: "Esgotado", Status: "publish", StockQuantity: intPtr(0)},
		{Name: "Baixo", Status: "publish", StockQuantity: intPtr(3)},
		{Name: "Rascunho", Status: "draft", StockQuantity: intPtr(0)},
		{Name: "Cheio", Status: "publish", StockQuantity: intPtr(50)},
	}

	alerts := BuildAlerts(nil, products)

	out := findInsight(alerts, "alert-out-of-stock")
	require.NotNil(t, out)
	assert.Contains(t, out.Message, "1 produto(s)")
	assert.Contains(t, out.Message, "Esgotado")

	low := findInsight(alerts, "alert-low-stock")
	require.NotNil(t, low)
	// the out-of-stock product must not also count as low stock
	assert.Contains(t, low.Message, "1 produto(s)")
	assert.Contains(t, low.Message, "Baixo")
}

func TestBuildAlertsIgnoresUnmanagedStock(t *testing.T) {
	// nil stock_quantity means the store does not track stock for the
	// product; it may be fully available, so no alert either way
	products := []models.Product{
		{Name: "Sem gestão", Status: "publish", StockQuantity: nil},
	}

	alerts := BuildAlerts(nil, products)
	assert.Nil(t, findInsight(alerts, "alert-out-of-stock"))
	assert.Nil(t, findInsight(alerts, "alert-low-stock"))
}

func TestBuildAlertsIgnoresNegativeBackorderStock(t *testing.T) {
	// backorder-enabled products go negative; that is neither "out of
	// stock" (== 0) nor "low stock" (0 < qty < 5)
	products := []models.Product{
		{Name: "Sob encomenda", Status: "publish", StockQuantity: intPtr(-3)},
		{Name: "Esgotado", Status: "publish", StockQuantity: intPtr(0)},
	}

	alerts := BuildAlerts(nil, products)
	assert.Nil(t, findInsight(alerts, "alert-low-stock"))

	out := findInsight(alerts, "alert-out-of-stock")
	require.NotNil(t, out)
	assert.Contains(t, out.Message, "1 produto(s)")
	assert.Contains(t, out.Message, "Esgotado")
}

func TestBuildAlertsPendingOrders(t *testing.T) {
	orders := []models.Order{
		{Status: "pending"},
		{Status: "on-hold"},
		{Status: "completed"},
		{Status: "cancelled"},
	}

	alerts := BuildAlerts(orders, nil)
	pending := findInsight(alerts, "alert-pending-orders")
	require.NotNil(t, pending)
	assert.Contains(t, pending.Message, "2 pedido(s)")
}

func TestBuildOpportunitiesEmptyOrders(t *testing.T) {
	assert.Empty(t, BuildOpportunities(nil))
}

func TestBuildOpportunitiesBestHour(t *testing.T) {
	orders := []models.Order{
		orderAt(9, monday, "200.00", ""),
		orderAt(14, monday, "200.00", ""),
		orderAt(14, monday, "200.00", ""),
	}

	opportunities := BuildOpportunities(orders)
	best := findInsight(opportunities, "opportunity-best-hour")
	require.NotNil(t, best)
	assert.Contains(t, best.Message, "14h")
	assert.Contains(t, best.Message, "2 pedidos")
}

func TestBuildOpportunitiesHourTieKeepsLowerBucket(t *testing.T) {
	orders := []models.Order{
		orderAt(9, monday, "200.00", ""),
		orderAt(14, monday, "200.00", ""),
	}

	opportunities := BuildOpportunities(orders)
	best := findInsight(opportunities, "opportunity-best-hour")
	require.NotNil(t, best)
	// a tie resolves to the earlier hour, deterministically
	assert.Contains(t, best.Message, "9h")
}

func TestBuildOpportunitiesBestRegion(t *testing.T) {
	orders := []models.Order{
		orderAt(10, monday, "150.00", "SP"),
		orderAt(11, monday, "150.00", "SP"),
		orderAt(12, monday, "150.00", "RJ"),
		orderAt(13, monday, "150.00", ""),
	}

	opportunities := BuildOpportunities(orders)
	region := findInsight(opportunities, "opportunity-best-region")
	require.NotNil(t, region)
	assert.Contains(t, region.Message, "SP")
	assert.Contains(t, region.Message, "(2)")
}

func TestBuildOpportunitiesUpsellThreshold(t *testing.T) {
	cheap := []models.Order{
		orderAt(10, monday, "40.00", ""),
		orderAt(11, monday, "60.00", ""),
	}
	opportunities := BuildOpportunities(cheap)
	upsell := findInsight(opportunities, "opportunity-upsell")
	require.NotNil(t, upsell)
	assert.Contains(t, upsell.Message, "R$ 50.00")

	// average exactly at the threshold does not trigger
	atThreshold := []models.Order{
		orderAt(10, monday, "100.00", ""),
	}
	opportunities = BuildOpportunities(atThreshold)
	assert.Nil(t, findInsight(opportunities, "opportunity-upsell"))
}

func TestBuildOpportunitiesUnparsableTotalCountsAsZero(t *testing.T) {
	orders := []models.Order{
		orderAt(10, monday, "not-a-number", ""),
		orderAt(11, monday, "80.00", ""),
	}

	// (0 + 80) / 2 = 40 → upsell fires instead of an error
	opportunities := BuildOpportunities(orders)
	upsell := findInsight(opportunities, "opportunity-upsell")
	require.NotNil(t, upsell)
	assert.Contains(t, upsell.Message, "R$ 40.00")
}

func TestBuildPerformanceUsesFirstTopSellerAsGiven(t *testing.T) {
	// the report arrives sorted upstream; BuildPerformance must not re-sort
	topSellers := []models.TopSeller{
		{Name: "Camiseta", Revenue: 900, Quantity: 30},
		{Name: "Caneca", Revenue: 1200, Quantity: 10},
	}

	performance := BuildPerformance(nil, topSellers, 0)
	top := findInsight(performance, "performance-top-product")
	require.NotNil(t, top)
	assert.Contains(t, top.Message, "Camiseta")
}

func TestBuildPerformanceAverageTicket(t *testing.T) {
	sales := []models.AnalyticsInterval{
		{Date: "2026-08-01", TotalSales: 300, TotalOrders: 2},
		{Date: "2026-08-02", TotalSales: 100, TotalOrders: 2},
	}

	performance := BuildPerformance(sales, nil, 5)

	ticket := findInsight(performance, "performance-avg-ticket")
	require.NotNil(t, ticket)
	assert.Contains(t, ticket.Message, "R$ 100.00")

	revenue := findInsight(performance, "performance-revenue")
	require.NotNil(t, revenue)
	assert.Contains(t, revenue.Message, "R$ 400.00")

	customers := findInsight(performance, "performance-customers")
	require.NotNil(t, customers)
	assert.Contains(t, customers.Message, "5 cliente(s)")
}

func TestBuildAllOrdersSectionsAlertsFirst(t *testing.T) {
	data := models.DashboardData{
		Orders:   []models.Order{{Status: "pending"}},
		Products: []models.Product{{Name: "Caneca", Status: "publish", StockQuantity: intPtr(1)}},
		Sales: []models.AnalyticsInterval{
			{Date: "2026-08-01", TotalSales: 500, TotalOrders: 1},
		},
		TopSellers:     []models.TopSeller{{Name: "Caneca", Revenue: 500, Quantity: 1}},
		TotalCustomers: 3,
	}

	all := BuildAll(data)
	require.NotEmpty(t, all)
	assert.Equal(t, models.InsightAlert, all[0].Type)
	assert.Equal(t, models.InsightPerformance, all[len(all)-1].Type)
}
