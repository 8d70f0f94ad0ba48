package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"squote/internal/domain"
)

func sampleQuote() domain.Quote {
	created := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

	event := domain.NewEvent(created)
	event.ClientName = "Dana Lee"
	event.ClientEmail = "dana@example.com"
	event.ClientPhone = "555-0100"
	event.EventName = "Lee Wedding"
	event.EventType = domain.EventTypeWedding
	event.EventDate = time.Date(2026, time.December, 5, 17, 0, 0, 0, time.UTC)
	event.Venue = "Harbor Hall"
	event.GuestCount = 120

	buffet := domain.NewQuoteItem("Buffet Dinner", "Three-course buffet", domain.CategoryCatering, decimal.RequireFromString("50"), 3, "guest")
	buffet.IsSelected = true
	photographer := domain.NewQuoteItem("Photographer", "", domain.CategoryPhotography, decimal.RequireFromString("100"), 1, "event")
	photographer.IsSelected = true
	arch := domain.NewQuoteItem("Floral Arch", "", domain.CategoryDecoration, decimal.RequireFromString("400"), 1, "piece")

	q := domain.NewQuote(event, []domain.QuoteItem{photographer, arch, buffet}, created)
	q.ID = uuid.MustParse("0f3c9a7e-1111-4222-8333-444455556666")
	q.DiscountPercentage = decimal.RequireFromString("20")
	q.Notes = "Deposit due on signing."
	return q
}

const sampleText = `EVENT QUOTATION
================

Quote Number: QT-20261019-0F3C9A7E
Date: October 19, 2026
Valid Until: November 18, 2026

CLIENT INFORMATION
------------------
Name: Dana Lee
Email: dana@example.com
Phone: 555-0100

EVENT DETAILS
-------------
Event: Lee Wedding
Type: Wedding
Date: December 5, 2026
Venue: Harbor Hall
Guests: 120
Duration: 4.0 hours
QUOTATION BREAKDOWN
-------------------

CATERING
• Buffet Dinner - 3 guest @ $50.00 = $150.00
  Three-course buffet

PHOTOGRAPHY
• Photographer - 1 event @ $100.00 = $100.00

PRICING SUMMARY
---------------
Subtotal: $250.00
Discount (20.0%): -$50.00
Tax (8.5%): $17.00
TOTAL: $217.00

NOTES
-----
Deposit due on signing.

Thank you for considering our services for your special event!
`

func TestTextMatchesExpectedDocument(t *testing.T) {
	got := Text(sampleQuote())
	if got != sampleText {
		t.Fatalf("unexpected text export:\n%s\n--- want ---\n%s", got, sampleText)
	}
}

func TestTextIsDeterministic(t *testing.T) {
	q := sampleQuote()
	first := Text(q)
	for i := 0; i < 5; i++ {
		if got := Text(q); got != first {
			t.Fatalf("render %d differs from the first render", i)
		}
	}
}

func TestTextOmitsOptionalLines(t *testing.T) {
	q := sampleQuote()
	q.DiscountPercentage = decimal.Zero
	q.AdditionalFees = decimal.Zero
	q.Notes = ""
	q.Event.SpecialRequirements = ""

	got := Text(q)
	for _, unwanted := range []string{"Discount (", "Additional Fees:", "NOTES", "Special Requirements:"} {
		if strings.Contains(got, unwanted) {
			t.Fatalf("expected %q to be omitted:\n%s", unwanted, got)
		}
	}
	if !strings.Contains(got, "Duration: 4.0 hours\nQUOTATION BREAKDOWN\n") {
		t.Fatalf("expected breakdown directly after the event block:\n%s", got)
	}
	if !strings.Contains(got, "Tax (8.5%): $21.25\n") {
		t.Fatalf("expected tax on the full subtotal:\n%s", got)
	}
	if !strings.HasSuffix(got, "TOTAL: $271.25\n\n"+closingLine+"\n") {
		t.Fatalf("expected total followed by the closing line:\n%s", got)
	}
}

func TestTextIncludesOptionalLinesWhenSet(t *testing.T) {
	q := sampleQuote()
	q.AdditionalFees = decimal.RequireFromString("25")
	q.Event.SpecialRequirements = "Vegetarian options"

	got := Text(q)
	if !strings.Contains(got, "Duration: 4.0 hours\nSpecial Requirements: Vegetarian options\n\n") {
		t.Fatalf("expected special requirements after duration:\n%s", got)
	}
	if !strings.Contains(got, "Discount (20.0%): -$50.00\nAdditional Fees: $25.00\nTax (8.5%):") {
		t.Fatalf("expected fees between discount and tax:\n%s", got)
	}
}

func TestTextSkipsUnselectedItems(t *testing.T) {
	got := Text(sampleQuote())
	if strings.Contains(got, "Floral Arch") || strings.Contains(got, "DECORATION") {
		t.Fatalf("unselected item leaked into export:\n%s", got)
	}
}

func TestGroupSelectedUsesCategoryOrder(t *testing.T) {
	q := sampleQuote()
	other := domain.NewQuoteItem("Misc", "", domain.CategoryOther, decimal.RequireFromString("1"), 1, "piece")
	other.IsSelected = true
	second := domain.NewQuoteItem("Canapes", "", domain.CategoryCatering, decimal.RequireFromString("2"), 1, "tray")
	second.IsSelected = true
	q.Items = append([]domain.QuoteItem{other}, append(q.Items, second)...)

	groups := GroupSelected(q)
	want := []domain.Category{domain.CategoryCatering, domain.CategoryPhotography, domain.CategoryOther}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, category := range want {
		if groups[i].Category != category {
			t.Fatalf("group %d: expected %s, got %s", i, category, groups[i].Category)
		}
	}
	catering := groups[0].Items
	if len(catering) != 2 || catering[0].Name != "Buffet Dinner" || catering[1].Name != "Canapes" {
		t.Fatalf("expected catering items in quote order, got %+v", catering)
	}
}

func TestTextWithNoSelectedItems(t *testing.T) {
	q := sampleQuote()
	for i := range q.Items {
		q.Items[i].IsSelected = false
	}
	got := Text(q)
	if !strings.Contains(got, "QUOTATION BREAKDOWN\n-------------------\n\nPRICING SUMMARY\n") {
		t.Fatalf("expected empty breakdown:\n%s", got)
	}
	if !strings.Contains(got, "Subtotal: $0.00\n") {
		t.Fatalf("expected zero subtotal:\n%s", got)
	}
}
