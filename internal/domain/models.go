package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"squote/internal/xid"
)

const (
	DefaultValidityDays  = 30
	DefaultDurationHours = 4.0
)

var (
	DefaultTaxPercentage = decimal.RequireFromString("8.5")

	ErrInvalidItem = errors.New("invalid item")
)

// QuoteItem is both a catalog entry and a line bound into a quote. Catalog
// entries keep IsSelected false; quote lines carry the selection and the
// quantity chosen for the event.
type QuoteItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	IsSelected  bool            `json:"isSelected"`
}

func NewQuoteItem(name string, description string, category Category, unitPrice decimal.Decimal, quantity int, unit string) QuoteItem {
	return QuoteItem{
		ID:          xid.New(),
		Name:        name,
		Description: description,
		Category:    category,
		UnitPrice:   unitPrice,
		Quantity:    ClampQuantity(quantity),
		Unit:        unit,
	}
}

func (i QuoteItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i *QuoteItem) SetQuantity(quantity int) {
	i.Quantity = ClampQuantity(quantity)
}

// Validate reports ErrInvalidItem for a blank name or a negative unit price.
func (i QuoteItem) Validate() error {
	if err := validate.Struct(i); err != nil || strings.TrimSpace(i.Name) == "" {
		return ErrInvalidItem
	}
	if i.UnitPrice.IsNegative() {
		return ErrInvalidItem
	}
	return nil
}

func ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

type Event struct {
	ID                  uuid.UUID `json:"id"`
	ClientName          string    `json:"clientName" validate:"required"`
	ClientEmail         string    `json:"clientEmail"`
	ClientPhone         string    `json:"clientPhone"`
	EventName           string    `json:"eventName" validate:"required"`
	EventType           EventType `json:"eventType"`
	EventDate           time.Time `json:"eventDate"`
	Venue               string    `json:"venue" validate:"required"`
	GuestCount          int       `json:"guestCount" validate:"gt=0"`
	Duration            float64   `json:"duration"`
	SpecialRequirements string    `json:"specialRequirements"`
	CreatedDate         time.Time `json:"createdDate"`
}

func NewEvent(now time.Time) Event {
	return Event{
		ID:          xid.New(),
		EventType:   EventTypeWedding,
		EventDate:   now,
		Duration:    DefaultDurationHours,
		CreatedDate: now,
	}
}

type Quote struct {
	ID                 uuid.UUID       `json:"id"`
	Event              Event           `json:"event"`
	Items              []QuoteItem     `json:"items"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	TaxPercentage      decimal.Decimal `json:"taxPercentage"`
	AdditionalFees     decimal.Decimal `json:"additionalFees"`
	Notes              string          `json:"notes"`
	ValidUntil         time.Time       `json:"validUntil"`
	Status             QuoteStatus     `json:"status"`
	CreatedDate        time.Time       `json:"createdDate"`
	LastModified       time.Time       `json:"lastModified"`
}

func NewQuote(event Event, items []QuoteItem, now time.Time) Quote {
	cloned := make([]QuoteItem, len(items))
	copy(cloned, items)

	return Quote{
		ID:                 xid.New(),
		Event:              event,
		Items:              cloned,
		DiscountPercentage: decimal.Zero,
		TaxPercentage:      DefaultTaxPercentage,
		AdditionalFees:     decimal.Zero,
		ValidUntil:         now.AddDate(0, 0, DefaultValidityDays),
		Status:             QuoteStatusDraft,
		CreatedDate:        now,
		LastModified:       now,
	}
}

// QuoteNumber is derived from the creation date and the id, both fixed at
// creation, so it never changes over the life of the quote.
func (q Quote) QuoteNumber() string {
	return "QT-" + q.CreatedDate.Format("20060102") + "-" + xid.Short(q.ID)
}

// Touch advances LastModified, never earlier than CreatedDate.
func (q *Quote) Touch(now time.Time) {
	if now.Before(q.CreatedDate) {
		now = q.CreatedDate
	}
	q.LastModified = now
}

func (q Quote) Clone() Quote {
	cloned := q
	cloned.Items = CloneItems(q.Items)
	return cloned
}

func (q Quote) IndexOfItem(id uuid.UUID) int {
	for i, item := range q.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func CloneItems(items []QuoteItem) []QuoteItem {
	if items == nil {
		return []QuoteItem{}
	}
	cloned := make([]QuoteItem, len(items))
	copy(cloned, items)
	return cloned
}
