package quotation

// Pricing is a set of pure functions over line items. Amounts carry full
// float precision; rounding happens only when a value is formatted for
// display, so Total always equals Subtotal plus Tax exactly.

func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineSubtotal()
	}
	return sum
}

func Tax(items []LineItem) float64 {
	return Subtotal(items) * TaxRate
}

func Total(items []LineItem, applyTax bool) float64 {
	if applyTax {
		return Subtotal(items) + Tax(items)
	}
	return Subtotal(items)
}
