package gofpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "Zero", in: 0, want: "$0.00"},
		{name: "TwoDecimals", in: 50, want: "$50.00"},
		{name: "Thousands", in: 1234.5, want: "$1,234.50"},
		{name: "Millions", in: 1000000, want: "$1,000,000.00"},
		{name: "RoundsDisplayOnly", in: 10.006, want: "$10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money(tt.in))
		})
	}
}
