package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func mustUUID(t *testing.T, value string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(value)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", value, err)
	}
	return id
}

func assertItemEqual(t *testing.T, got QuoteItem, want QuoteItem) {
	t.Helper()
	if got.ID != want.ID || got.Name != want.Name || got.Description != want.Description ||
		got.Category != want.Category || got.Quantity != want.Quantity || got.Unit != want.Unit ||
		got.IsSelected != want.IsSelected || !got.UnitPrice.Equal(want.UnitPrice) {
		t.Fatalf("item mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 4, 15, 30, 45, 123456789, time.FixedZone("IST", 5*3600+1800))
	event := NewEvent(now)
	event.ClientName = "Asha"
	event.ClientEmail = "asha@example.com"
	event.ClientPhone = "+91 98765 43210"
	event.EventName = "Asha & Ravi"
	event.EventType = EventTypeAnniversary
	event.EventDate = now.AddDate(0, 2, 0)
	event.Venue = "Lotus Hall"
	event.GuestCount = 250
	event.Duration = 6.5
	event.SpecialRequirements = "Vegetarian menu"

	first := NewQuoteItem("Wedding Dinner", "3-course dinner per person", CategoryCatering, dec("850"), 250, "per person")
	first.IsSelected = true
	second := NewQuoteItem("Garlands", "", CategoryFlowers, dec("500.25"), 10, "per garland")

	q := NewQuote(event, []QuoteItem{first, second}, now)
	q.DiscountPercentage = dec("12.5")
	q.TaxPercentage = dec("18")
	q.AdditionalFees = dec("1500.75")
	q.Notes = "Advance of 30% on booking"
	q.Status = QuoteStatusSent
	q.Touch(now.Add(time.Hour))

	payload, err := json.Marshal([]Quote{q})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []Quote
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected one quote, got %d", len(decoded))
	}
	got := decoded[0]

	if got.ID != q.ID || got.Notes != q.Notes || got.Status != q.Status {
		t.Fatalf("scalar mismatch: %+v", got)
	}
	if !got.DiscountPercentage.Equal(q.DiscountPercentage) || !got.TaxPercentage.Equal(q.TaxPercentage) ||
		!got.AdditionalFees.Equal(q.AdditionalFees) {
		t.Fatalf("pricing inputs mismatch: %+v", got)
	}
	if !got.CreatedDate.Equal(q.CreatedDate) || !got.LastModified.Equal(q.LastModified) || !got.ValidUntil.Equal(q.ValidUntil) {
		t.Fatalf("dates mismatch: %+v", got)
	}
	if got.QuoteNumber() != q.QuoteNumber() {
		t.Fatalf("quote number changed: %s vs %s", got.QuoteNumber(), q.QuoteNumber())
	}

	ge, we := got.Event, q.Event
	if ge.ID != we.ID || ge.ClientName != we.ClientName || ge.ClientEmail != we.ClientEmail ||
		ge.ClientPhone != we.ClientPhone || ge.EventName != we.EventName || ge.EventType != we.EventType ||
		!ge.EventDate.Equal(we.EventDate) || ge.Venue != we.Venue || ge.GuestCount != we.GuestCount ||
		ge.Duration != we.Duration || ge.SpecialRequirements != we.SpecialRequirements ||
		!ge.CreatedDate.Equal(we.CreatedDate) {
		t.Fatalf("event mismatch:\n got  %+v\n want %+v", ge, we)
	}

	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	assertItemEqual(t, got.Items[0], first)
	assertItemEqual(t, got.Items[1], second)
}

func TestCatalogItemRoundTrip(t *testing.T) {
	item := NewQuoteItem("Drone Photography", "Aerial photography and videography", CategoryPhotography, dec("15000"), 1, "per event")

	payload, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got QuoteItem
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	assertItemEqual(t, got, item)
}

func TestEnumsEncodeAsLabels(t *testing.T) {
	payload, err := json.Marshal(struct {
		Category  Category    `json:"category"`
		EventType EventType   `json:"eventType"`
		Status    QuoteStatus `json:"status"`
	}{CategoryTransportation, EventTypeCorporate, QuoteStatusApproved})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"category":"Transportation","eventType":"Corporate Event","status":"Approved"}`
	if string(payload) != want {
		t.Fatalf("got %s, want %s", payload, want)
	}
}

func TestDecodeAppliesDefaults(t *testing.T) {
	created := "2026-01-10T09:00:00Z"
	payload := `{
		"id": "0f3c9a7e-1234-4b5c-8d9e-aabbccddeeff",
		"createdDate": "` + created + `",
		"event": {"clientName": "Lee", "eventType": "Gala Night"},
		"items": [{"name": "Mic", "quantity": 0, "category": "Equipment", "unitPrice": "25"}, {"name": "Chairs"}],
		"status": "Archived",
		"unexpected": true
	}`

	var q Quote
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !q.TaxPercentage.Equal(DefaultTaxPercentage) {
		t.Fatalf("expected default tax, got %s", q.TaxPercentage)
	}
	if !q.DiscountPercentage.IsZero() || !q.AdditionalFees.IsZero() {
		t.Fatalf("expected zero discount and fees")
	}
	if q.Status != QuoteStatusDraft {
		t.Fatalf("expected unknown status to decode as Draft, got %s", q.Status)
	}
	createdAt, _ := time.Parse(time.RFC3339, created)
	if !q.ValidUntil.Equal(createdAt.AddDate(0, 0, 30)) {
		t.Fatalf("expected validUntil = created + 30d, got %s", q.ValidUntil)
	}
	if q.LastModified.Before(q.CreatedDate) {
		t.Fatalf("lastModified before createdDate")
	}
	if q.Event.Duration != 4.0 || q.Event.EventType != EventTypeOther || q.Event.ID == uuid.Nil {
		t.Fatalf("unexpected event defaults: %+v", q.Event)
	}
	if len(q.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(q.Items))
	}
	if q.Items[0].Quantity != 1 || q.Items[0].Category != CategoryEquipment {
		t.Fatalf("unexpected first item: %+v", q.Items[0])
	}
	if q.Items[1].ID == uuid.Nil || q.Items[1].Quantity != 1 || q.Items[1].Category != CategoryOther || !q.Items[1].UnitPrice.IsZero() {
		t.Fatalf("unexpected second item: %+v", q.Items[1])
	}
	if q.Items[0].ID == q.Items[1].ID {
		t.Fatalf("expected generated ids to differ")
	}
}

func TestParseEnums(t *testing.T) {
	if c, ok := ParseCategory("flowers"); !ok || c != CategoryFlowers {
		t.Fatalf("ParseCategory(flowers) = %v, %v", c, ok)
	}
	if _, ok := ParseCategory("Bakery"); ok {
		t.Fatalf("expected Bakery to be rejected")
	}
	if et, ok := ParseEventType("corporate"); !ok || et != EventTypeCorporate {
		t.Fatalf("ParseEventType(corporate) = %v, %v", et, ok)
	}
	if et, ok := ParseEventType("Birthday Party"); !ok || et != EventTypeBirthday {
		t.Fatalf("ParseEventType(Birthday Party) = %v, %v", et, ok)
	}
	if s, ok := ParseQuoteStatus("APPROVED"); !ok || s != QuoteStatusApproved {
		t.Fatalf("ParseQuoteStatus(APPROVED) = %v, %v", s, ok)
	}
	if len(Categories()) != 10 || Categories()[0] != CategoryCatering || Categories()[9] != CategoryOther {
		t.Fatalf("unexpected category order %v", Categories())
	}
}
