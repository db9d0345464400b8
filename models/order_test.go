package models

import (
	"encoding/json"
	"testing"
)

func TestWooTimeParsesTimezoneLessTimestamp(t *testing.T) {
	var o Order
	payload := `{"id": 1, "total": "149.90", "date_created": "2026-08-22T16:28:02"}`
	if err := json.Unmarshal([]byte(payload), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.DateCreated.Hour() != 16 || o.DateCreated.Day() != 22 {
		t.Errorf("bad parse: %v", o.DateCreated)
	}
}

func TestWooTimeAcceptsRFC3339(t *testing.T) {
	var o Order
	payload := `{"id": 1, "date_created": "2026-08-22T16:28:02-03:00"}`
	if err := json.Unmarshal([]byte(payload), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.DateCreated.IsZero() {
		t.Error("expected a parsed time")
	}
}

func TestWooTimeNullAndEmpty(t *testing.T) {
	for _, payload := range []string{
		`{"id": 1, "date_created": null}`,
		`{"id": 1, "date_created": ""}`,
	} {
		var o Order
		if err := json.Unmarshal([]byte(payload), &o); err != nil {
			t.Errorf("payload %s: unexpected error: %v", payload, err)
		}
		if !o.DateCreated.IsZero() {
			t.Errorf("payload %s: expected zero time", payload)
		}
	}
}

func TestTotalAmountParseFailureIsZero(t *testing.T) {
	o := Order{Total: "not-money"}
	if !o.TotalAmount().IsZero() {
		t.Errorf("expected zero, got %s", o.TotalAmount())
	}

	o = Order{Total: "149.90"}
	if o.TotalAmount().String() != "149.9" {
		t.Errorf("expected 149.9, got %s", o.TotalAmount())
	}
}

func TestCustomerFullNameFallsBackToEmail(t *testing.T) {
	cu := Customer{Email: "ana@example.com"}
	if cu.FullName() != "ana@example.com" {
		t.Errorf("got %q", cu.FullName())
	}

	cu = Customer{FirstName: "Ana", LastName: "Souza"}
	if cu.FullName() != "Ana Souza" {
		t.Errorf("got %q", cu.FullName())
	}
}
