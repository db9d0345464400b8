// Package insights computes the advisory records the dashboard shows.
// Every function is pure: collections in, []models.Insight out, recomputed
// on demand and never persisted.
package insights

import (
	"fmt"

	"github.com/noord-hq/noord-backend/models"
)

// upsellThreshold is the average order value (R$) under which we suggest
// upsell tactics.
const upsellThreshold = 100.0

// lowStockLimit marks products with fewer units as running low.
const lowStockLimit = 5

// BuildAlerts flags inventory and order problems: low-stock and
// out-of-stock published products (mutually exclusive buckets) and orders
// waiting on payment. Only managed stock counts: exactly zero is out of
// stock, strictly between zero and the limit is low. Negative quantities
// (backorders) and unmanaged products trigger neither.
func BuildAlerts(orders []models.Order, products []models.Product) []models.Insight {
	var alerts []models.Insight

	lowStock := 0
	outOfStock := 0
	var lowStockSample, outOfStockSample string
	for _, p := range products {
		if p.Status != "publish" {
			continue
		}
		qty, managed := p.ManagedStock()
		if !managed {
			continue
		}
		switch {
		case qty == 0:
			outOfStock++
			if outOfStockSample == "" {
				outOfStockSample = p.Name
			}
		case qty > 0 && qty < lowStockLimit:
			lowStock++
			if lowStockSample == "" {
				lowStockSample = p.Name
			}
		}
	}

	if outOfStock > 0 {
		alerts = append(alerts, models.Insight{
			ID:      "alert-out-of-stock",
			Type:    models.InsightAlert,
			Icon:    "package-x",
			Title:   "Produtos esgotados",
			Message: fmt.Sprintf("%d produto(s) sem estoque, incluindo \"%s\". Reponha para não perder vendas.", outOfStock, outOfStockSample),
			Action:  "Ver estoque",
		})
	}
	if lowStock > 0 {
		alerts = append(alerts, models.Insight{
			ID:      "alert-low-stock",
			Type:    models.InsightAlert,
			Icon:    "package-minus",
			Title:   "Estoque baixo",
			Message: fmt.Sprintf("%d produto(s) com menos de %d unidades, incluindo \"%s\".", lowStock, lowStockLimit, lowStockSample),
			Action:  "Ver estoque",
		})
	}

	pending := 0
	for _, o := range orders {
		if o.Status == "pending" || o.Status == "on-hold" {
			pending++
		}
	}
	if pending > 0 {
		alerts = append(alerts, models.Insight{
			ID:      "alert-pending-orders",
			Type:    models.InsightAlert,
			Icon:    "clock",
			Title:   "Pedidos aguardando",
			Message: fmt.Sprintf("%d pedido(s) pendentes ou em espera aguardando pagamento.", pending),
			Action:  "Ver pedidos",
		})
	}

	return alerts
}

// BuildOpportunities finds patterns worth acting on: the busiest hour and
// weekday, the region with most orders and a low average ticket. Bucket
// ties resolve to the first-seen (lower) bucket: comparisons use > not >=.
func BuildOpportunities(orders []models.Order) []models.Insight {
	var opportunities []models.Insight
	if len(orders) == 0 {
		return opportunities
	}

	var hourCount [24]int
	var weekdayCount [7]int
	for _, o := range orders {
		hourCount[o.DateCreated.Hour()]++
		weekdayCount[int(o.DateCreated.Weekday())]++
	}

	bestHour, bestHourOrders := 0, 0
	for h, n := range hourCount {
		if n > bestHourOrders {
			bestHour, bestHourOrders = h, n
		}
	}
	if bestHourOrders > 0 {
		opportunities = append(opportunities, models.Insight{
			ID:      "opportunity-best-hour",
			Type:    models.InsightOpportunity,
			Icon:    "clock",
			Title:   "Melhor horário de vendas",
			Message: fmt.Sprintf("Seus clientes mais compram às %dh (%d pedidos). Programe campanhas para esse horário.", bestHour, bestHourOrders),
			Action:  "Criar campanha",
		})
	}

	weekdays := []string{"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado"}
	bestDay, bestDayOrders := 0, 0
	for d, n := range weekdayCount {
		if n > bestDayOrders {
			bestDay, bestDayOrders = d, n
		}
	}
	if bestDayOrders > 0 {
		opportunities = append(opportunities, models.Insight{
			ID:      "opportunity-best-day",
			Type:    models.InsightOpportunity,
			Icon:    "calendar",
			Title:   "Melhor dia da semana",
			Message: fmt.Sprintf("%s concentra suas vendas (%d pedidos).", title(weekdays[bestDay]), bestDayOrders),
		})
	}

	stateCount := make(map[string]int)
	bestState, bestStateOrders := "", 0
	for _, o := range orders {
		st := o.Billing.State
		if st == "" {
			continue
		}
		stateCount[st]++
		if stateCount[st] > bestStateOrders {
			bestState, bestStateOrders = st, stateCount[st]
		}
	}
	if bestState != "" {
		opportunities = append(opportunities, models.Insight{
			ID:      "opportunity-best-region",
			Type:    models.InsightOpportunity,
			Icon:    "map-pin",
			Title:   "Região que mais compra",
			Message: fmt.Sprintf("%s lidera em pedidos (%d). Considere frete promocional para a região.", bestState, bestStateOrders),
		})
	}

	totalRevenue := 0.0
	for _, o := range orders {
		amount, _ := o.TotalAmount().Float64()
		totalRevenue += amount
	}
	avgTicket := totalRevenue / float64(len(orders))
	if avgTicket < upsellThreshold {
		opportunities = append(opportunities, models.Insight{
			ID:      "opportunity-upsell",
			Type:    models.InsightOpportunity,
			Icon:    "trending-up",
			Title:   "Aumente o ticket médio",
			Message: fmt.Sprintf("Ticket médio de R$ %.2f está abaixo de R$ %.0f. Ofereça kits ou frete grátis acima de um valor mínimo.", avgTicket, upsellThreshold),
			Action:  "Ver produtos",
		})
	}

	return opportunities
}

// BuildPerformance summarizes the period: top product (the caller supplies
// the report already sorted by revenue — no independent sort here), customer
// base size, average ticket and total revenue.
func BuildPerformance(sales []models.AnalyticsInterval, topSellers []models.TopSeller, totalCustomers int) []models.Insight {
	var performance []models.Insight

	if len(topSellers) > 0 {
		top := topSellers[0]
		performance = append(performance, models.Insight{
			ID:      "performance-top-product",
			Type:    models.InsightPerformance,
			Icon:    "award",
			Title:   "Produto destaque",
			Message: fmt.Sprintf("\"%s\" lidera o período com R$ %.2f em vendas (%d unidades).", top.Name, top.Revenue, top.Quantity),
		})
	}

	if totalCustomers > 0 {
		performance = append(performance, models.Insight{
			ID:      "performance-customers",
			Type:    models.InsightPerformance,
			Icon:    "users",
			Title:   "Base de clientes",
			Message: fmt.Sprintf("Sua loja tem %d cliente(s) cadastrados.", totalCustomers),
		})
	}

	totalRevenue := 0.0
	totalOrders := 0
	for _, day := range sales {
		totalRevenue += day.TotalSales
		totalOrders += day.TotalOrders
	}
	if totalOrders > 0 {
		performance = append(performance, models.Insight{
			ID:      "performance-avg-ticket",
			Type:    models.InsightPerformance,
			Icon:    "receipt",
			Title:   "Ticket médio do período",
			Message: fmt.Sprintf("R$ %.2f por pedido em %d pedido(s).", totalRevenue/float64(totalOrders), totalOrders),
		})
	}
	if totalRevenue > 0 {
		performance = append(performance, models.Insight{
			ID:      "performance-revenue",
			Type:    models.InsightPerformance,
			Icon:    "banknote",
			Title:   "Receita do período",
			Message: fmt.Sprintf("R$ %.2f no intervalo selecionado.", totalRevenue),
		})
	}

	return performance
}

// BuildAll concatenates the three calculators in dashboard display order.
func BuildAll(data models.DashboardData) []models.Insight {
	out := BuildAlerts(data.Orders, data.Products)
	out = append(out, BuildOpportunities(data.Orders)...)
	out = append(out, BuildPerformance(data.Sales, data.TopSellers, data.TotalCustomers)...)
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
