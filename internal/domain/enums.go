package domain

import (
	"strings"
)

// Category order is significant: exports group items in declaration order.
type Category int

const (
	CategoryCatering Category = iota
	CategoryDecoration
	CategoryEntertainment
	CategoryPhotography
	CategoryVenue
	CategoryTransportation
	CategoryEquipment
	CategoryStaffing
	CategoryFlowers
	CategoryOther
)

var categoryLabels = [...]string{
	"Catering",
	"Decoration",
	"Entertainment",
	"Photography",
	"Venue",
	"Transportation",
	"Equipment",
	"Staffing",
	"Flowers",
	"Other",
}

func Categories() []Category {
	all := make([]Category, len(categoryLabels))
	for i := range categoryLabels {
		all[i] = Category(i)
	}
	return all
}

func (c Category) Valid() bool {
	return c >= CategoryCatering && c <= CategoryOther
}

func (c Category) String() string {
	if !c.Valid() {
		return categoryLabels[CategoryOther]
	}
	return categoryLabels[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText never fails: an unrecognised label decodes as Other.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		parsed = CategoryOther
	}
	*c = parsed
	return nil
}

func ParseCategory(value string) (Category, bool) {
	idx := lookupLabel(categoryLabels[:], nil, value)
	if idx < 0 {
		return CategoryOther, false
	}
	return Category(idx), true
}

type EventType int

const (
	EventTypeWedding EventType = iota
	EventTypeCorporate
	EventTypeBirthday
	EventTypeAnniversary
	EventTypeConference
	EventTypeWorkshop
	EventTypeGraduation
	EventTypeOther
)

var eventTypeLabels = [...]string{
	"Wedding",
	"Corporate Event",
	"Birthday Party",
	"Anniversary",
	"Conference",
	"Workshop",
	"Graduation",
	"Other",
}

var eventTypeNames = [...]string{
	"wedding",
	"corporate",
	"birthday",
	"anniversary",
	"conference",
	"workshop",
	"graduation",
	"other",
}

func EventTypes() []EventType {
	all := make([]EventType, len(eventTypeLabels))
	for i := range eventTypeLabels {
		all[i] = EventType(i)
	}
	return all
}

func (t EventType) Valid() bool {
	return t >= EventTypeWedding && t <= EventTypeOther
}

func (t EventType) String() string {
	if !t.Valid() {
		return eventTypeLabels[EventTypeOther]
	}
	return eventTypeLabels[t]
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(text []byte) error {
	parsed, ok := ParseEventType(string(text))
	if !ok {
		parsed = EventTypeOther
	}
	*t = parsed
	return nil
}

// ParseEventType accepts the display label ("Corporate Event") or the short
// name ("corporate"), case-insensitively.
func ParseEventType(value string) (EventType, bool) {
	idx := lookupLabel(eventTypeLabels[:], eventTypeNames[:], value)
	if idx < 0 {
		return EventTypeOther, false
	}
	return EventType(idx), true
}

type QuoteStatus int

const (
	QuoteStatusDraft QuoteStatus = iota
	QuoteStatusSent
	QuoteStatusApproved
	QuoteStatusRejected
	QuoteStatusExpired
)

var quoteStatusLabels = [...]string{
	"Draft",
	"Sent",
	"Approved",
	"Rejected",
	"Expired",
}

func QuoteStatuses() []QuoteStatus {
	all := make([]QuoteStatus, len(quoteStatusLabels))
	for i := range quoteStatusLabels {
		all[i] = QuoteStatus(i)
	}
	return all
}

func (s QuoteStatus) Valid() bool {
	return s >= QuoteStatusDraft && s <= QuoteStatusExpired
}

func (s QuoteStatus) String() string {
	if !s.Valid() {
		return quoteStatusLabels[QuoteStatusDraft]
	}
	return quoteStatusLabels[s]
}

func (s QuoteStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *QuoteStatus) UnmarshalText(text []byte) error {
	parsed, ok := ParseQuoteStatus(string(text))
	if !ok {
		parsed = QuoteStatusDraft
	}
	*s = parsed
	return nil
}

func ParseQuoteStatus(value string) (QuoteStatus, bool) {
	idx := lookupLabel(quoteStatusLabels[:], nil, value)
	if idx < 0 {
		return QuoteStatusDraft, false
	}
	return QuoteStatus(idx), true
}

func lookupLabel(labels []string, names []string, value string) int {
	value = strings.TrimSpace(value)
	for i, label := range labels {
		if strings.EqualFold(label, value) {
			return i
		}
	}
	for i, name := range names {
		if strings.EqualFold(name, value) {
			return i
		}
	}
	return -1
}
