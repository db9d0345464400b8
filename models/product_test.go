package models

import "testing"

func TestManagedStockDistinguishesUnmanaged(t *testing.T) {
	p := Product{StockQuantity: nil}
	if _, managed := p.ManagedStock(); managed {
		t.Error("nil stock_quantity must report unmanaged")
	}

	zero := 0
	p = Product{StockQuantity: &zero}
	qty, managed := p.ManagedStock()
	if !managed || qty != 0 {
		t.Errorf("managed zero stock: got qty=%d managed=%t", qty, managed)
	}

	negative := -3
	p = Product{StockQuantity: &negative}
	qty, managed = p.ManagedStock()
	if !managed || qty != -3 {
		t.Errorf("backorder stock: got qty=%d managed=%t", qty, managed)
	}
}

func TestPriceAmountParseFailureIsZero(t *testing.T) {
	p := Product{Price: "abc"}
	if !p.PriceAmount().IsZero() {
		t.Errorf("expected zero, got %s", p.PriceAmount())
	}

	p = Product{Price: "19.90"}
	if p.PriceAmount().String() != "19.9" {
		t.Errorf("expected 19.9, got %s", p.PriceAmount())
	}
}
