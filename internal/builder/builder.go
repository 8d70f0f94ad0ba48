// Package builder holds the working state of one quote while it is being
// created or edited: a private copy of the catalog, the selection, and the
// quote itself.
package builder

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"squote/internal/domain"
	"squote/internal/export"
	"squote/internal/xid"
)

// QuoteStore is the part of service.Service a builder needs.
type QuoteStore interface {
	DefaultItems() []domain.QuoteItem
	HasQuote(id uuid.UUID) bool
	AddQuote(ctx context.Context, q domain.Quote) error
	UpdateQuote(ctx context.Context, q domain.Quote) error
}

type Builder struct {
	store QuoteStore
	now   func() time.Time

	quote          domain.Quote
	availableItems []domain.QuoteItem
}

type Option func(*Builder)

func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// Filter narrows FilteredItems. A nil Category and an empty Search match
// everything.
type Filter struct {
	Category *domain.Category
	Search   string
}

// New starts an edit session. With a nil existing quote a fresh quote is
// created; otherwise catalog entries already present in the quote start
// selected with the quote's quantities.
func New(store QuoteStore, existing *domain.Quote, opts ...Option) *Builder {
	b := &Builder{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	if existing != nil {
		b.quote = existing.Clone()
	} else {
		now := b.now()
		b.quote = domain.NewQuote(domain.NewEvent(now), nil, now)
	}

	b.availableItems = store.DefaultItems()
	for i := range b.availableItems {
		b.availableItems[i].IsSelected = false
		b.availableItems[i].Quantity = 1
	}

	if existing != nil {
		for i := range b.availableItems {
			idx := b.quote.IndexOfItem(b.availableItems[i].ID)
			if idx < 0 {
				continue
			}
			b.availableItems[i].IsSelected = true
			b.availableItems[i].Quantity = b.quote.Items[idx].Quantity
		}
	}
	return b
}

// Quote returns a snapshot of the quote being edited.
func (b *Builder) Quote() domain.Quote {
	return b.quote.Clone()
}

func (b *Builder) AvailableItems() []domain.QuoteItem {
	return domain.CloneItems(b.availableItems)
}

// ToggleItemSelection flips the selection of a catalog entry and adds it to
// or removes it from the quote. It returns the new selection state; unknown
// ids are ignored and report false.
func (b *Builder) ToggleItemSelection(id uuid.UUID) bool {
	idx := b.indexOfAvailable(id)
	if idx < 0 {
		return false
	}

	item := &b.availableItems[idx]
	item.IsSelected = !item.IsSelected
	if item.IsSelected {
		if b.quote.IndexOfItem(id) < 0 {
			b.quote.Items = append(b.quote.Items, *item)
		}
	} else {
		b.removeFromQuote(id)
	}
	b.touch()
	return item.IsSelected
}

// UpdateItemQuantity sets the quantity on both the catalog copy and the
// quote line. Quantities below 1 become 1.
func (b *Builder) UpdateItemQuantity(id uuid.UUID, quantity int) {
	quantity = domain.ClampQuantity(quantity)
	if idx := b.indexOfAvailable(id); idx >= 0 {
		b.availableItems[idx].Quantity = quantity
	}
	if idx := b.quote.IndexOfItem(id); idx >= 0 {
		b.quote.Items[idx].Quantity = quantity
	}
	b.touch()
}

// AddCustomItem adds an item that is not part of the catalog, already
// selected. The stored catalog is left untouched.
func (b *Builder) AddCustomItem(item domain.QuoteItem) (domain.QuoteItem, error) {
	if err := item.Validate(); err != nil {
		return domain.QuoteItem{}, err
	}
	if item.ID == uuid.Nil {
		item.ID = xid.New()
	}
	item.Quantity = domain.ClampQuantity(item.Quantity)
	item.IsSelected = true

	b.availableItems = append(b.availableItems, item)
	b.quote.Items = append(b.quote.Items, item)
	b.touch()
	return item, nil
}

func (b *Builder) RemoveItem(id uuid.UUID) {
	b.availableItems = slices.DeleteFunc(b.availableItems, func(item domain.QuoteItem) bool {
		return item.ID == id
	})
	b.removeFromQuote(id)
	b.touch()
}

// FilteredItems returns the catalog copies matching f, sorted by name. The
// search matches name or description case-insensitively.
func (b *Builder) FilteredItems(f Filter) []domain.QuoteItem {
	caser := cases.Fold()
	needle := caser.String(f.Search)

	items := make([]domain.QuoteItem, 0, len(b.availableItems))
	for _, item := range b.availableItems {
		if f.Category != nil && item.Category != *f.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(caser.String(item.Name), needle) &&
			!strings.Contains(caser.String(item.Description), needle) {
			continue
		}
		items = append(items, item)
	}

	slices.SortStableFunc(items, func(x, y domain.QuoteItem) int {
		return strings.Compare(x.Name, y.Name)
	})
	return items
}

func (b *Builder) SelectedItems() []domain.QuoteItem {
	return b.quote.SelectedItems()
}

// ItemsByCategory groups the selected items. Categories without a selected
// item have no entry.
func (b *Builder) ItemsByCategory() map[domain.Category][]domain.QuoteItem {
	groups := make(map[domain.Category][]domain.QuoteItem)
	for _, item := range b.quote.SelectedItems() {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// UpdateEvent replaces the event. A zero ID or CreatedDate keeps the
// current event's value.
func (b *Builder) UpdateEvent(event domain.Event) {
	if event.ID == uuid.Nil {
		event.ID = b.quote.Event.ID
	}
	if event.CreatedDate.IsZero() {
		event.CreatedDate = b.quote.Event.CreatedDate
	}
	b.quote.Event = event
	b.touch()
}

func (b *Builder) UpdateDiscount(percentage decimal.Decimal) {
	b.quote.DiscountPercentage = domain.ClampDiscount(percentage)
	b.touch()
}

func (b *Builder) UpdateTax(percentage decimal.Decimal) {
	b.quote.TaxPercentage = domain.ClampNonNegative(percentage)
	b.touch()
}

func (b *Builder) UpdateAdditionalFees(amount decimal.Decimal) {
	b.quote.AdditionalFees = domain.ClampNonNegative(amount)
	b.touch()
}

func (b *Builder) UpdateNotes(notes string) {
	b.quote.Notes = notes
	b.touch()
}

func (b *Builder) UpdateValidUntil(validUntil time.Time) {
	b.quote.ValidUntil = validUntil
	b.touch()
}

func (b *Builder) UpdateStatus(status domain.QuoteStatus) {
	b.quote.Status = status
	b.touch()
}

// SaveQuote updates the stored quote when its id is already known to the
// store and adds it otherwise.
func (b *Builder) SaveQuote(ctx context.Context) error {
	b.touch()
	if b.store.HasQuote(b.quote.ID) {
		return b.store.UpdateQuote(ctx, b.quote.Clone())
	}
	return b.store.AddQuote(ctx, b.quote.Clone())
}

func (b *Builder) ExportQuote() string {
	return export.Text(b.quote)
}

func (b *Builder) touch() {
	b.quote.Touch(b.now())
}

func (b *Builder) indexOfAvailable(id uuid.UUID) int {
	return slices.IndexFunc(b.availableItems, func(item domain.QuoteItem) bool {
		return item.ID == id
	})
}

func (b *Builder) removeFromQuote(id uuid.UUID) {
	b.quote.Items = slices.DeleteFunc(b.quote.Items, func(item domain.QuoteItem) bool {
		return item.ID == id
	})
}
