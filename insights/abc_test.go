package insights

import (
	"testing"

	"github.com/noord-hq/noord-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classByName(t *testing.T, analysis models.ABCAnalysis, name string) models.ABCClass {
	t.Helper()
	for _, c := range analysis.Classes {
		if c.Class == name {
			return c
		}
	}
	t.Fatalf("class %s missing", name)
	return models.ABCClass{}
}

func TestClassifyABCBoundaryItemStaysInLowerClass(t *testing.T) {
	// 800/1000 = exactly 80% → A; 950/1000 = exactly 95% → B; rest C.
	products := []models.TopSeller{
		{ProductID: 1, Name: "Camiseta", Revenue: 800},
		{ProductID: 2, Name: "Caneca", Revenue: 150},
		{ProductID: 3, Name: "Adesivo", Revenue: 50},
	}

	analysis := ClassifyABC(products)
	assert.InDelta(t, 1000.0, analysis.TotalRevenue, 0.001)

	a := classByName(t, analysis, "A")
	require.Equal(t, 1, a.Count)
	assert.Equal(t, "Camiseta", a.Products[0].Name)

	b := classByName(t, analysis, "B")
	require.Equal(t, 1, b.Count)
	assert.Equal(t, "Caneca", b.Products[0].Name)

	c := classByName(t, analysis, "C")
	require.Equal(t, 1, c.Count)
	assert.Equal(t, "Adesivo", c.Products[0].Name)
}

func TestClassifyABCRevenueSumsToTotal(t *testing.T) {
	products := []models.TopSeller{
		{ProductID: 1, Revenue: 512.37},
		{ProductID: 2, Revenue: 250.11},
		{ProductID: 3, Revenue: 99.99},
		{ProductID: 4, Revenue: 47.53},
		{ProductID: 5, Revenue: 12.00},
	}

	analysis := ClassifyABC(products)

	sum := 0.0
	count := 0
	for _, c := range analysis.Classes {
		sum += c.Revenue
		count += c.Count
	}
	assert.InDelta(t, analysis.TotalRevenue, sum, 0.001)
	assert.Equal(t, len(products), count)
}

func TestClassifyABCSortsByRevenueDescending(t *testing.T) {
	products := []models.TopSeller{
		{ProductID: 1, Name: "Pequeno", Revenue: 10},
		{ProductID: 2, Name: "Grande", Revenue: 900},
		{ProductID: 3, Name: "Médio", Revenue: 90},
	}

	analysis := ClassifyABC(products)

	a := classByName(t, analysis, "A")
	require.NotEmpty(t, a.Products)
	assert.Equal(t, "Grande", a.Products[0].Name)
}

func TestClassifyABCDropsZeroRevenue(t *testing.T) {
	products := []models.TopSeller{
		{ProductID: 1, Name: "Vendido", Revenue: 100},
		{ProductID: 2, Name: "Encalhado", Revenue: 0},
		{ProductID: 3, Name: "Estornado", Revenue: -25},
	}

	analysis := ClassifyABC(products)
	assert.InDelta(t, 100.0, analysis.TotalRevenue, 0.001)

	count := 0
	for _, c := range analysis.Classes {
		count += c.Count
	}
	assert.Equal(t, 1, count)
}

func TestClassifyABCTieKeepsInputOrder(t *testing.T) {
	products := []models.TopSeller{
		{ProductID: 1, Name: "Primeiro", Revenue: 500},
		{ProductID: 2, Name: "Segundo", Revenue: 500},
	}

	analysis := ClassifyABC(products)

	var ordered []string
	for _, c := range analysis.Classes {
		for _, p := range c.Products {
			ordered = append(ordered, p.Name)
		}
	}
	require.Len(t, ordered, 2)
	assert.Equal(t, []string{"Primeiro", "Segundo"}, ordered)
}

func TestClassifyABCEmptyInput(t *testing.T) {
	analysis := ClassifyABC(nil)
	assert.Zero(t, analysis.TotalRevenue)
	require.Len(t, analysis.Classes, 3)
	for _, c := range analysis.Classes {
		assert.Zero(t, c.Count)
		assert.Empty(t, c.Products)
	}
}

func TestClassifyABCSingleProductLandsInC(t *testing.T) {
	// One product holds 100% of revenue; its cumulative share exceeds both
	// thresholds, so the rule puts it in C.
	analysis := ClassifyABC([]models.TopSeller{{ProductID: 9, Name: "Único", Revenue: 320}})

	c := classByName(t, analysis, "C")
	require.Equal(t, 1, c.Count)
	assert.Equal(t, "Único", c.Products[0].Name)
	assert.Zero(t, classByName(t, analysis, "A").Count)
}
