package domain

import "github.com/shopspring/decimal"

// Pricing is a snapshot of the derived amounts of a quote.
type Pricing struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

func (q Quote) SelectedItems() []QuoteItem {
	selected := make([]QuoteItem, 0, len(q.Items))
	for _, item := range q.Items {
		if item.IsSelected {
			selected = append(selected, item)
		}
	}
	return selected
}

func (q Quote) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range q.Items {
		if !item.IsSelected {
			continue
		}
		total = total.Add(item.LineTotal())
	}
	return total
}

// Percentages are applied with Shift(-2) rather than Div so that no
// division rounding enters the totals.
func (q Quote) DiscountAmount() decimal.Decimal {
	return q.Subtotal().Mul(q.DiscountPercentage).Shift(-2)
}

func (q Quote) TaxableAmount() decimal.Decimal {
	return q.Subtotal().Sub(q.DiscountAmount()).Add(q.AdditionalFees)
}

func (q Quote) TaxAmount() decimal.Decimal {
	return q.TaxableAmount().Mul(q.TaxPercentage).Shift(-2)
}

func (q Quote) TotalAmount() decimal.Decimal {
	return q.TaxableAmount().Add(q.TaxAmount())
}

func (q Quote) Pricing() Pricing {
	subtotal := q.Subtotal()
	discount := subtotal.Mul(q.DiscountPercentage).Shift(-2)
	taxable := subtotal.Sub(discount).Add(q.AdditionalFees)
	tax := taxable.Mul(q.TaxPercentage).Shift(-2)

	return Pricing{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxAmount:      tax,
		TotalAmount:    taxable.Add(tax),
	}
}

// ClampDiscount bounds a discount percentage to [0, 100].
func ClampDiscount(percentage decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if percentage.IsNegative() {
		return decimal.Zero
	}
	if percentage.GreaterThan(hundred) {
		return hundred
	}
	return percentage
}

// ClampNonNegative is used for tax percentages and additional fees.
func ClampNonNegative(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}
