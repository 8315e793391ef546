package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cotiza-jara/go_backend/internal/domain/quotation"
)

func items(pairs ...[2]float64) []quotation.LineItem {
	out := make([]quotation.LineItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, quotation.LineItem{Quantity: int(p[0]), UnitPrice: p[1]})
	}
	return out
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []quotation.LineItem
		want  float64
	}{
		{name: "Empty", items: nil, want: 0},
		{name: "SingleItem", items: items([2]float64{3, 10.5}), want: 31.5},
		{name: "TwoItems", items: items([2]float64{2, 100}, [2]float64{1, 50}), want: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quotation.Subtotal(tt.items))
		})
	}
}

func TestTotal(t *testing.T) {
	list := items([2]float64{2, 100}, [2]float64{1, 50})

	assert.Equal(t, 20.0, quotation.Tax(list))
	assert.Equal(t, 270.0, quotation.Total(list, true))
	assert.Equal(t, 250.0, quotation.Total(list, false))
	assert.Equal(t, 0.0, quotation.Total(nil, true))
}

func TestSubtotalOrderInvariant(t *testing.T) {
	a := items([2]float64{2, 100}, [2]float64{1, 50}, [2]float64{4, 12.75})
	b := []quotation.LineItem{a[2], a[0], a[1]}

	assert.Equal(t, quotation.Subtotal(a), quotation.Subtotal(b))
	assert.Equal(t, quotation.Total(a, true), quotation.Total(b, true))
}

func TestTotalHasNoDrift(t *testing.T) {
	lists := [][]quotation.LineItem{
		items([2]float64{1, 0.1}, [2]float64{3, 0.2}),
		items([2]float64{7, 999.99}),
		items([2]float64{2, 100}, [2]float64{1, 50}, [2]float64{13, 3.33}),
	}

	for _, list := range lists {
		assert.Equal(t, quotation.Subtotal(list)+quotation.Tax(list), quotation.Total(list, true))
	}
}

func TestLineSubtotal(t *testing.T) {
	it := quotation.LineItem{Quantity: 4, UnitPrice: 2.5}
	assert.Equal(t, 10.0, it.LineSubtotal())
}
