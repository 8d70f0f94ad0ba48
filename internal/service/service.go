// Package service owns the saved quotes and the reusable item catalog and
// persists both through a store.KV.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	"squote/internal/domain"
	"squote/internal/export"
	"squote/internal/store"
	"squote/internal/xid"
)

// Service is not safe for concurrent use.
type Service struct {
	kv     store.KV
	logger *logrus.Entry
	now    func() time.Time

	quotes       []domain.Quote
	defaultItems []domain.QuoteItem
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New loads both collections from kv and seeds the starter catalog when the
// catalog is empty. A nil logger discards output.
func New(ctx context.Context, kv store.KV, logger *logrus.Logger, opts ...Option) (*Service, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	s := &Service{
		kv:           kv,
		logger:       logger.WithField("module", "service"),
		now:          time.Now,
		quotes:       []domain.Quote{},
		defaultItems: []domain.QuoteItem{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	if _, err := s.Seed(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory collections with the stored ones. A blob that
// does not decode is treated as an empty collection.
func (s *Service) Load(ctx context.Context) error {
	quotes, err := loadCollection[domain.Quote](ctx, s, store.KeySavedQuotes)
	if err != nil {
		return err
	}
	items, err := loadCollection[domain.QuoteItem](ctx, s, store.KeyDefaultItems)
	if err != nil {
		return err
	}
	s.quotes = quotes
	s.defaultItems = items
	return nil
}

// Save writes both collections.
func (s *Service) Save(ctx context.Context) error {
	if err := s.saveQuotes(ctx); err != nil {
		return err
	}
	return s.saveDefaultItems(ctx)
}

func (s *Service) AddQuote(ctx context.Context, q domain.Quote) error {
	s.quotes = append(s.quotes, q.Clone())
	return s.saveQuotes(ctx)
}

// UpdateQuote replaces the stored quote with the same id and stamps
// LastModified. Unknown ids are ignored.
func (s *Service) UpdateQuote(ctx context.Context, q domain.Quote) error {
	idx := s.indexOfQuote(q.ID)
	if idx < 0 {
		s.logger.WithField("quote_id", q.ID).Debug("update of unknown quote ignored")
		return nil
	}

	updated := q.Clone()
	updated.Touch(s.now())
	s.quotes[idx] = updated
	return s.saveQuotes(ctx)
}

// DeleteQuote removes every quote with the given id and persists the result
// even when nothing matched.
func (s *Service) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	kept := s.quotes[:0]
	for _, q := range s.quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.quotes = kept
	return s.saveQuotes(ctx)
}

func (s *Service) AddDefaultItem(ctx context.Context, item domain.QuoteItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ID == uuid.Nil {
		item.ID = xid.New()
	}
	item.Quantity = domain.ClampQuantity(item.Quantity)
	item.IsSelected = false
	s.defaultItems = append(s.defaultItems, item)
	return s.saveDefaultItems(ctx)
}

func (s *Service) UpdateDefaultItem(ctx context.Context, item domain.QuoteItem) error {
	for i := range s.defaultItems {
		if s.defaultItems[i].ID != item.ID {
			continue
		}
		if err := item.Validate(); err != nil {
			return err
		}
		item.Quantity = domain.ClampQuantity(item.Quantity)
		s.defaultItems[i] = item
		return s.saveDefaultItems(ctx)
	}
	s.logger.WithField("item_id", item.ID).Debug("update of unknown catalog item ignored")
	return nil
}

func (s *Service) DeleteDefaultItem(ctx context.Context, id uuid.UUID) error {
	kept := s.defaultItems[:0]
	for _, item := range s.defaultItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.defaultItems = kept
	return s.saveDefaultItems(ctx)
}

// GenerateQuoteText renders q with the plain-text exporter.
func (s *Service) GenerateQuoteText(q domain.Quote) string {
	return export.Text(q)
}

func (s *Service) Quotes() []domain.Quote {
	out := make([]domain.Quote, len(s.quotes))
	for i, q := range s.quotes {
		out[i] = q.Clone()
	}
	return out
}

func (s *Service) DefaultItems() []domain.QuoteItem {
	return domain.CloneItems(s.defaultItems)
}

func (s *Service) Quote(id uuid.UUID) (domain.Quote, bool) {
	idx := s.indexOfQuote(id)
	if idx < 0 {
		return domain.Quote{}, false
	}
	return s.quotes[idx].Clone(), true
}

func (s *Service) HasQuote(id uuid.UUID) bool {
	return s.indexOfQuote(id) >= 0
}

// SearchQuotes returns the quotes whose client name, event name or quote
// number contains query, ignoring case, newest first. An empty query
// matches every quote.
func (s *Service) SearchQuotes(query string) []domain.Quote {
	caser := cases.Fold()
	needle := caser.String(strings.TrimSpace(query))

	matches := make([]domain.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		if needle != "" &&
			!strings.Contains(caser.String(q.Event.ClientName), needle) &&
			!strings.Contains(caser.String(q.Event.EventName), needle) &&
			!strings.Contains(caser.String(q.QuoteNumber()), needle) {
			continue
		}
		matches = append(matches, q.Clone())
	}

	slices.SortStableFunc(matches, func(x, y domain.Quote) int {
		return y.CreatedDate.Compare(x.CreatedDate)
	})
	return matches
}

// FindQuote resolves a full id, a unique id prefix or a quote number.
func (s *Service) FindQuote(ref string) (domain.Quote, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Quote{}, store.ErrNotFound
	}

	if id, err := uuid.Parse(ref); err == nil {
		if q, ok := s.Quote(id); ok {
			return q, nil
		}
		return domain.Quote{}, store.ErrNotFound
	}

	for _, q := range s.quotes {
		if strings.EqualFold(q.QuoteNumber(), ref) {
			return q.Clone(), nil
		}
	}

	var matches []domain.Quote
	for _, q := range s.quotes {
		if xid.HasPrefix(q.ID, ref) {
			matches = append(matches, q)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Quote{}, store.ErrNotFound
	case 1:
		return matches[0].Clone(), nil
	default:
		return domain.Quote{}, fmt.Errorf("quote reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func (s *Service) indexOfQuote(id uuid.UUID) int {
	for i, q := range s.quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) saveQuotes(ctx context.Context) error {
	return saveCollection(ctx, s, store.KeySavedQuotes, s.quotes)
}

func (s *Service) saveDefaultItems(ctx context.Context) error {
	return saveCollection(ctx, s, store.KeyDefaultItems, s.defaultItems)
}

func loadCollection[T any](ctx context.Context, s *Service, key string) ([]T, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var decoded []T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("stored collection could not be decoded, starting empty")
		return []T{}, nil
	}
	if decoded == nil {
		decoded = []T{}
	}
	return decoded, nil
}

func saveCollection[T any](ctx context.Context, s *Service, key string, values []T) error {
	if values == nil {
		values = []T{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, encoded); err != nil {
		s.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("failed to persist collection")
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
