package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newTestQuote(items ...QuoteItem) Quote {
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	return NewQuote(NewEvent(now), items, now)
}

func selectedItem(price string, qty int) QuoteItem {
	item := NewQuoteItem("Item", "", CategoryCatering, dec(price), qty, "per piece")
	item.IsSelected = true
	return item
}

func TestPricingScenario(t *testing.T) {
	deselected := NewQuoteItem("Cake", "", CategoryCatering, dec("50"), 1, "per cake")
	q := newTestQuote(selectedItem("100", 2), deselected)
	q.DiscountPercentage = dec("10")
	q.TaxPercentage = dec("8.5")
	q.AdditionalFees = dec("20")

	p := q.Pricing()
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"subtotal", p.Subtotal, "200"},
		{"discount", p.DiscountAmount, "20"},
		{"taxable", p.TaxableAmount, "200"},
		{"tax", p.TaxAmount, "17"},
		{"total", p.TotalAmount, "217"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Fatalf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if !q.TotalAmount().Equal(p.TotalAmount) {
		t.Fatalf("TotalAmount() = %s, Pricing().TotalAmount = %s", q.TotalAmount(), p.TotalAmount)
	}
}

func TestSubtotalIgnoresOrderAndUnselected(t *testing.T) {
	a := selectedItem("12.25", 3)
	b := selectedItem("0.10", 7)
	c := NewQuoteItem("Skipped", "", CategoryVenue, dec("999"), 1, "per day")

	forward := newTestQuote(a, b, c)
	backward := newTestQuote(c, b, a)

	want := dec("37.45")
	if !forward.Subtotal().Equal(want) || !backward.Subtotal().Equal(want) {
		t.Fatalf("expected subtotal %s both ways, got %s and %s", want, forward.Subtotal(), backward.Subtotal())
	}
}

func TestTotalIsTaxableTimesTaxFactorExactly(t *testing.T) {
	tests := []struct {
		discount, tax, fees string
	}{
		{"0", "0", "0"},
		{"10", "8.5", "20"},
		{"33.3", "7.25", "0.99"},
		{"100", "12", "5"},
		{"2.5", "19.125", "1234.56"},
	}
	for _, tt := range tests {
		q := newTestQuote(selectedItem("199.99", 3), selectedItem("0.33", 11))
		q.DiscountPercentage = dec(tt.discount)
		q.TaxPercentage = dec(tt.tax)
		q.AdditionalFees = dec(tt.fees)

		subtotal := q.Subtotal()
		taxable := subtotal.Sub(q.DiscountAmount()).Add(q.AdditionalFees)
		want := taxable.Mul(decimal.NewFromInt(1).Add(q.TaxPercentage.Shift(-2)))
		if !q.TotalAmount().Equal(want) {
			t.Fatalf("discount=%s tax=%s fees=%s: total %s, want %s", tt.discount, tt.tax, tt.fees, q.TotalAmount(), want)
		}
	}
}

func TestZeroDiscountAndFeesMonotonic(t *testing.T) {
	q := newTestQuote(selectedItem("80", 2))
	if !q.DiscountAmount().IsZero() {
		t.Fatalf("expected zero discount amount, got %s", q.DiscountAmount())
	}

	previous := q.TotalAmount()
	for _, fee := range []string{"0.01", "1", "50", "1000"} {
		q.AdditionalFees = dec(fee)
		total := q.TotalAmount()
		if !total.GreaterThan(previous) {
			t.Fatalf("expected total to increase with fees=%s, got %s after %s", fee, total, previous)
		}
		previous = total
	}
}

func TestQuantityClamp(t *testing.T) {
	item := NewQuoteItem("Chair", "", CategoryEquipment, dec("5"), 0, "per piece")
	if item.Quantity != 1 {
		t.Fatalf("expected constructor to clamp quantity to 1, got %d", item.Quantity)
	}
	for _, qty := range []int{0, -5, 1} {
		item.SetQuantity(qty)
		if item.Quantity != 1 {
			t.Fatalf("SetQuantity(%d) left %d", qty, item.Quantity)
		}
	}
	item.SetQuantity(12)
	if !item.LineTotal().Equal(dec("60")) {
		t.Fatalf("expected line total 60, got %s", item.LineTotal())
	}
}

func TestQuoteNumber(t *testing.T) {
	q := newTestQuote()
	q.ID = mustUUID(t, "0f3c9a7e-1234-4b5c-8d9e-aabbccddeeff")

	if got := q.QuoteNumber(); got != "QT-20261019-0F3C9A7E" {
		t.Fatalf("unexpected quote number %s", got)
	}
	q.Notes = "changed"
	q.Touch(q.CreatedDate.Add(48 * time.Hour))
	if got := q.QuoteNumber(); got != "QT-20261019-0F3C9A7E" {
		t.Fatalf("quote number changed after mutation: %s", got)
	}
}

func TestTouchNeverPrecedesCreation(t *testing.T) {
	q := newTestQuote()
	q.Touch(q.CreatedDate.Add(-time.Hour))
	if q.LastModified.Before(q.CreatedDate) {
		t.Fatalf("LastModified %s before CreatedDate %s", q.LastModified, q.CreatedDate)
	}
}

func TestNewQuoteDefaults(t *testing.T) {
	q := newTestQuote()
	if !q.TaxPercentage.Equal(dec("8.5")) {
		t.Fatalf("expected default tax 8.5, got %s", q.TaxPercentage)
	}
	if q.Status != QuoteStatusDraft {
		t.Fatalf("expected draft status, got %s", q.Status)
	}
	if !q.ValidUntil.Equal(q.CreatedDate.AddDate(0, 0, 30)) {
		t.Fatalf("expected validUntil creation+30d, got %s", q.ValidUntil)
	}
	if q.Event.Duration != 4.0 || q.Event.GuestCount != 0 {
		t.Fatalf("unexpected event defaults: %+v", q.Event)
	}
}

func TestClampHelpers(t *testing.T) {
	if got := ClampDiscount(dec("150")); !got.Equal(dec("100")) {
		t.Fatalf("expected 100, got %s", got)
	}
	if got := ClampDiscount(dec("-3")); !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := ClampNonNegative(dec("-0.01")); !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := ClampNonNegative(dec("12.5")); !got.Equal(dec("12.5")) {
		t.Fatalf("expected 12.5, got %s", got)
	}
}

func TestItemValidate(t *testing.T) {
	valid := NewQuoteItem("Lights", "", CategoryEquipment, dec("10"), 1, "per day")
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid item, got %v", err)
	}

	blank := valid
	blank.Name = "   "
	if err := blank.Validate(); err != ErrInvalidItem {
		t.Fatalf("expected ErrInvalidItem for blank name, got %v", err)
	}

	negative := valid
	negative.UnitPrice = dec("-1")
	if err := negative.Validate(); err != ErrInvalidItem {
		t.Fatalf("expected ErrInvalidItem for negative price, got %v", err)
	}
}
