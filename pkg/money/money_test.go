package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain decimal", "1234.56", "1234.56"},
		{"dollar sign and thousands comma", "$1,234.56", "1234.56"},
		{"negative normalized to absolute", "-1234.56", "1234.56"},
		{"euro symbol", "€45.00", "45"},
		{"pound with spaces", "£ 12.50", "12.5"},
		{"currency code prefix", "CAD 99.99", "99.99"},
		{"no cents", "$42", "42"},
		{"surrounding whitespace", "  5.75 ", "5.75"},
		{"negative with symbol", "$-45.00", "45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.token)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, token := range []string{"", "0", "0.00", "$0.00", "abc", "N/A", "--", "."} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseAmount(token)
			assert.ErrorIs(t, err, ErrNotANumber)
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.7475", "0.75"},
		{"0.744", "0.74"},
		{"5.005", "5.01"},
		{"5", "5"},
	}
	for _, tt := range tests {
		got := Round2(decimal.RequireFromString(tt.in))
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"Round2(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestFloat(t *testing.T) {
	assert.InDelta(t, 0.75, Float(decimal.RequireFromString("0.7475")), 0.0001)
	assert.InDelta(t, 5.0, Float(decimal.RequireFromString("5.0025")), 0.0001)
}
