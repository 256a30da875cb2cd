package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatPKR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "small", amount: "5", want: "Rs 5"},
		{name: "hundreds", amount: "500", want: "Rs 500"},
		{name: "thousands", amount: "2500", want: "Rs 2,500"},
		{name: "millions", amount: "2500000", want: "Rs 2,500,000"},
		{name: "rounds fractions", amount: "99.99", want: "Rs 100"},
		{name: "negative", amount: "-1200", want: "-Rs 1,200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			require.Equal(t, tt.want, FormatPKR(amount))
		})
	}
}
