package insights

import (
	"sort"

	"github.com/noord-hq/noord-backend/models"
	"github.com/shopspring/decimal"
)

// ABC cumulative revenue share thresholds. The item that crosses a
// threshold belongs wholly to the lower class.
var (
	abcThresholdA = decimal.NewFromFloat(0.80)
	abcThresholdB = decimal.NewFromFloat(0.95)
)

// ClassifyABC partitions products into A/B/C tiers by cumulative revenue
// share: items up to 80% of revenue are A, up to 95% B, the tail C.
// Zero/negative revenue items are dropped; revenue ties keep their input
// order (stable sort).
func ClassifyABC(products []models.TopSeller) models.ABCAnalysis {
	filtered := make([]models.TopSeller, 0, len(products))
	for _, p := range products {
		if p.Revenue > 0 {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Revenue > filtered[j].Revenue
	})

	total := decimal.Zero
	for _, p := range filtered {
		total = total.Add(decimal.NewFromFloat(p.Revenue))
	}

	classes := []models.ABCClass{
		{Class: "A", Products: []models.TopSeller{}},
		{Class: "B", Products: []models.TopSeller{}},
		{Class: "C", Products: []models.TopSeller{}},
	}

	analysis := models.ABCAnalysis{}
	analysis.TotalRevenue, _ = total.Float64()
	if total.IsZero() {
		analysis.Classes = classes
		return analysis
	}

	running := decimal.Zero
	for _, p := range filtered {
		running = running.Add(decimal.NewFromFloat(p.Revenue))
		share := running.Div(total)

		idx := 2
		if share.LessThanOrEqual(abcThresholdA) {
			idx = 0
		} else if share.LessThanOrEqual(abcThresholdB) {
			idx = 1
		}

		classes[idx].Count++
		classes[idx].Revenue += p.Revenue
		classes[idx].Products = append(classes[idx].Products, p)
	}

	analysis.Classes = classes
	return analysis
}
