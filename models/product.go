package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is an immutable snapshot of a WooCommerce product at fetch time.
type Product struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Status        string            `json:"status"`
	Price         string            `json:"price"`
	StockQuantity *int              `json:"stock_quantity"`
	StockStatus   string            `json:"stock_status"`
	Categories    []ProductCategory `json:"categories"`
	Images        []ProductImage    `json:"images"`

	RawData datatypes.JSON `json:"raw_data,omitempty"`
}

type ProductCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProductImage struct {
	ID  int    `json:"id"`
	Src string `json:"src"`
}

// PriceAmount parses the WooCommerce money string, zero on failure.
func (p *Product) PriceAmount() decimal.Decimal {
	d, err := decimal.NewFromString(p.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ManagedStock returns the tracked quantity and whether the store manages
// stock for this product at all. Unmanaged products (nil quantity) may be
// fully in stock; only StockStatus would say.
func (p *Product) ManagedStock() (int, bool) {
	if p.StockQuantity == nil {
		return 0, false
	}
	return *p.StockQuantity, true
}
