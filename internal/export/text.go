// Package export renders quotes as documents: a plain-text quotation,
// an XLSX workbook and a PDF.
package export

import (
	"fmt"
	"strings"

	"squote/internal/domain"
)

const closingLine = "Thank you for considering our services for your special event!"

// CategoryGroup is one block of the itemized breakdown.
type CategoryGroup struct {
	Category domain.Category
	Items    []domain.QuoteItem
}

// GroupSelected groups the selected items of q by category, in category
// declaration order. Empty categories are skipped and items keep their
// order within the quote.
func GroupSelected(q domain.Quote) []CategoryGroup {
	byCategory := make(map[domain.Category][]domain.QuoteItem)
	for _, item := range q.SelectedItems() {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, category := range domain.Categories() {
		items := byCategory[category]
		if len(items) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{Category: category, Items: items})
	}
	return groups
}

// Text renders q as a plain-text quotation. The output depends only on q,
// so the same quote always renders to the same bytes.
func Text(q domain.Quote) string {
	var b strings.Builder
	event := q.Event
	pricing := q.Pricing()

	b.WriteString("EVENT QUOTATION\n")
	b.WriteString("================\n\n")
	fmt.Fprintf(&b, "Quote Number: %s\n", q.QuoteNumber())
	fmt.Fprintf(&b, "Date: %s\n", FormatLongDate(q.CreatedDate))
	fmt.Fprintf(&b, "Valid Until: %s\n\n", FormatLongDate(q.ValidUntil))

	b.WriteString("CLIENT INFORMATION\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "Name: %s\n", event.ClientName)
	fmt.Fprintf(&b, "Email: %s\n", event.ClientEmail)
	fmt.Fprintf(&b, "Phone: %s\n\n", event.ClientPhone)

	b.WriteString("EVENT DETAILS\n")
	b.WriteString("-------------\n")
	fmt.Fprintf(&b, "Event: %s\n", event.EventName)
	fmt.Fprintf(&b, "Type: %s\n", event.EventType)
	fmt.Fprintf(&b, "Date: %s\n", FormatLongDate(event.EventDate))
	fmt.Fprintf(&b, "Venue: %s\n", event.Venue)
	fmt.Fprintf(&b, "Guests: %d\n", event.GuestCount)
	fmt.Fprintf(&b, "Duration: %s hours\n", FormatHours(event.Duration))
	// Only the special requirements paragraph is followed by a blank line.
	if event.SpecialRequirements != "" {
		fmt.Fprintf(&b, "Special Requirements: %s\n\n", event.SpecialRequirements)
	}

	b.WriteString("QUOTATION BREAKDOWN\n")
	b.WriteString("-------------------\n\n")
	for _, group := range GroupSelected(q) {
		b.WriteString(strings.ToUpper(group.Category.String()))
		b.WriteString("\n")
		for _, item := range group.Items {
			fmt.Fprintf(&b, "• %s - %d %s @ %s = %s\n",
				item.Name, item.Quantity, item.Unit, FormatCurrency(item.UnitPrice), FormatCurrency(item.LineTotal()))
			if item.Description != "" {
				fmt.Fprintf(&b, "  %s\n", item.Description)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("PRICING SUMMARY\n")
	b.WriteString("---------------\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", FormatCurrency(pricing.Subtotal))
	if q.DiscountPercentage.IsPositive() {
		fmt.Fprintf(&b, "Discount (%s%%): -%s\n", FormatPercent(q.DiscountPercentage), FormatCurrency(pricing.DiscountAmount))
	}
	if q.AdditionalFees.IsPositive() {
		fmt.Fprintf(&b, "Additional Fees: %s\n", FormatCurrency(q.AdditionalFees))
	}
	fmt.Fprintf(&b, "Tax (%s%%): %s\n", FormatPercent(q.TaxPercentage), FormatCurrency(pricing.TaxAmount))
	fmt.Fprintf(&b, "TOTAL: %s\n\n", FormatCurrency(pricing.TotalAmount))

	if q.Notes != "" {
		b.WriteString("NOTES\n")
		b.WriteString("-----\n")
		b.WriteString(q.Notes)
		b.WriteString("\n\n")
	}

	b.WriteString(closingLine)
	b.WriteString("\n")
	return b.String()
}
