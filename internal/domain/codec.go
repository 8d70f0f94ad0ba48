package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"squote/internal/xid"
)

// Decoding fills every field missing from the payload with its documented
// default, so partially written or older records still load.

func (i *QuoteItem) UnmarshalJSON(data []byte) error {
	type rawItem QuoteItem
	raw := rawItem{Quantity: 1, Category: CategoryOther}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = QuoteItem(raw)
	if i.ID == uuid.Nil {
		i.ID = xid.New()
	}
	i.Quantity = ClampQuantity(i.Quantity)
	if i.UnitPrice.IsNegative() {
		i.UnitPrice = decimal.Zero
	}
	return nil
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type rawEvent Event
	raw := rawEvent{EventType: EventTypeWedding, Duration: DefaultDurationHours}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Event(raw)
	if e.ID == uuid.Nil {
		e.ID = xid.New()
	}
	now := time.Now()
	if e.CreatedDate.IsZero() {
		e.CreatedDate = now
	}
	if e.EventDate.IsZero() {
		e.EventDate = now
	}
	return nil
}

func (q *Quote) UnmarshalJSON(data []byte) error {
	type rawQuote Quote
	raw := rawQuote{
		DiscountPercentage: decimal.Zero,
		TaxPercentage:      DefaultTaxPercentage,
		AdditionalFees:     decimal.Zero,
		Status:             QuoteStatusDraft,
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*q = Quote(raw)
	if q.ID == uuid.Nil {
		q.ID = xid.New()
	}
	if q.Event.ID == uuid.Nil {
		q.Event = NewEvent(time.Now())
	}
	if q.Items == nil {
		q.Items = []QuoteItem{}
	}
	if q.CreatedDate.IsZero() {
		q.CreatedDate = time.Now()
	}
	if q.ValidUntil.IsZero() {
		q.ValidUntil = q.CreatedDate.AddDate(0, 0, DefaultValidityDays)
	}
	if q.LastModified.Before(q.CreatedDate) {
		q.LastModified = q.CreatedDate
	}
	q.DiscountPercentage = ClampDiscount(q.DiscountPercentage)
	q.TaxPercentage = ClampNonNegative(q.TaxPercentage)
	q.AdditionalFees = ClampNonNegative(q.AdditionalFees)
	return nil
}
