package models

// Insight types. The dashboard renders each type with its own styling.
const (
	InsightAlert       = "alert"
	InsightOpportunity = "opportunity"
	InsightPerformance = "performance"
)

// Insight is one advisory record, recomputed on demand from the current
// orders/products/customers and never persisted.
type Insight struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}
