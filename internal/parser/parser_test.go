package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReturnsNilWithoutAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "no digits", input: "ice cream"},
		{name: "words only with account", input: "coffee from meezan"},
		{name: "zero amount", input: "0 pizza"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Nil(t, Parse(tt.input))
		})
	}
}

func TestParseAmountExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare number", input: "500 pizza", want: "500"},
		{name: "rs suffix", input: "500rs pizza", want: "500"},
		{name: "rs suffix with space", input: "500 rs pizza", want: "500"},
		{name: "rs prefix", input: "rs500 pizza", want: "500"},
		{name: "rs dot prefix", input: "Rs. 500 pizza", want: "500"},
		{name: "rupees suffix", input: "500 rupees pizza", want: "500"},
		{name: "thousands separator", input: "1,200rs pizza", want: "1200"},
		{name: "decimal places", input: "99.99 taxi", want: "99.99"},
		{name: "sub rupee", input: "0.50 chai", want: "0.5"},
		{name: "first number wins", input: "500rs then 200 more", want: "500"},
		{name: "amount not at start", input: "pepsi 120rs", want: "120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			parsed := Parse(tt.input)
			require.NotNil(t, parsed)
			require.Equal(t, tt.want, parsed.Amount.String())
		})
	}
}

func TestParseFullRecord(t *testing.T) {
	t.Parallel()

	parsed := Parse("500rs ice cream from meezan")
	require.NotNil(t, parsed)
	require.Equal(t, "500", parsed.Amount.String())
	require.Equal(t, "Food", parsed.Category)
	require.Equal(t, "Meezan Bank", parsed.BankAccount)
	require.Equal(t, "Ice cream", parsed.Description)
	require.Equal(t, "500rs ice cream from meezan", parsed.RawInput)
}

func TestParseAccountDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "defaults to cash", input: "120 pepsi", want: "Cash"},
		{name: "wallet keyword", input: "300rs coffee jazzcash", want: "JazzCash"},
		{name: "short wallet alias", input: "200 lunch via jazz", want: "JazzCash"},
		{name: "bank keyword", input: "900 petrol from hbl", want: "HBL"},
		{name: "multi word bank", input: "700 dinner standard chartered", want: "Standard Chartered"},
		{name: "explicit cash", input: "50 chai cash", want: "Cash"},
		{name: "first rule wins over later", input: "100 lunch meezan jazzcash", want: "Meezan Bank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			parsed := Parse(tt.input)
			require.NotNil(t, parsed)
			require.Equal(t, tt.want, parsed.BankAccount)
		})
	}
}

func TestParseCategoryDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "defaults to other", input: "75 random things", want: "Other"},
		{name: "food keyword", input: "300rs coffee jazzcash", want: "Food"},
		{name: "transport keyword", input: "900 petrol from hbl", want: "Transport"},
		{name: "bills keyword", input: "4500 electricity", want: "Bills"},
		{name: "health keyword", input: "250 medicine", want: "Health"},
		{name: "entertainment keyword", input: "1500 netflix", want: "Entertainment"},
		{name: "groceries keyword", input: "800 vegetables", want: "Groceries"},
		{name: "earlier category wins tie", input: "600 dinner travel", want: "Food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			parsed := Parse(tt.input)
			require.NotNil(t, parsed)
			require.Equal(t, tt.want, parsed.Category)
		})
	}
}

func TestParseDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "strips amount", input: "500 pizza", want: "Pizza"},
		{name: "strips source phrase", input: "900 petrol from hbl", want: "Petrol"},
		{name: "strips bare account word", input: "300rs coffee jazzcash", want: "Coffee"},
		{name: "strips bank and account words", input: "250 medicine from meezan bank account", want: "Medicine"},
		{name: "falls back to category when empty", input: "500rs hbl", want: "Other"},
		{name: "falls back to detected category", input: "450 chai easypaisa", want: "Chai"},
		{name: "capitalizes first letter only", input: "120 cold drink", want: "Cold drink"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			parsed := Parse(tt.input)
			require.NotNil(t, parsed)
			require.Equal(t, tt.want, parsed.Description)
		})
	}
}
