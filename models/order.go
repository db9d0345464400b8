package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Order is an immutable snapshot of a WooCommerce order at fetch time.
// Orders are re-fetched wholesale on each sync; there is no per-record merge.
type Order struct {
	ID          int        `json:"id"`
	Status      string     `json:"status"`
	Currency    string     `json:"currency"`
	Total       string     `json:"total"`
	DateCreated WooTime    `json:"date_created"`
	CustomerID  int        `json:"customer_id"`
	Billing     Billing    `json:"billing"`
	LineItems   []LineItem `json:"line_items"`

	// RawData keeps the upstream payload verbatim for audit/debug views.
	RawData datatypes.JSON `json:"raw_data,omitempty"`
}

type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
}

type LineItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Subtotal  string  `json:"subtotal"`
	Total     string  `json:"total"`
	Price     float64 `json:"price"`
}

// TotalAmount parses the WooCommerce money string. Woo sends totals as
// strings ("149.90"); a parse failure counts as zero rather than aborting
// an aggregate over hundreds of orders.
func (o *Order) TotalAmount() decimal.Decimal {
	d, err := decimal.NewFromString(o.Total)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// WooTime handles WooCommerce's timezone-less timestamps
// ("2006-01-02T15:04:05") while still accepting RFC3339.
type WooTime struct {
	time.Time
}

func (t *WooTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	s = s[1 : len(s)-1]
	if parsed, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t WooTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}
