package quotemodel

import "quote_service/internal/domain/entities"

// Totals holds the derived amounts of a quote.
type Totals struct {
	Subtotal float64
	Total    float64
}

// CalculateTotals sums price x quantity over items.
//
// Total is a placeholder for tax and fee logic and currently equals Subtotal.
// Plain float64 summation is used, so rounding artifacts are possible.
func CalculateTotals(items []entities.QuoteItem) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	return Totals{Subtotal: subtotal, Total: subtotal}
}
