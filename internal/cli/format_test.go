package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		symbol string
		want   string
	}{
		{"small", "5", "$", "$5.00"},
		{"cents", "12.5", "$", "$12.50"},
		{"thousands", "1234.56", "$", "$1,234.56"},
		{"millions", "1234567.89", "$", "$1,234,567.89"},
		{"negative", "-42.1", "$", "-$42.10"},
		{"euro", "99.99", "€", "€99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FormatAmount(d, tt.symbol))
		})
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+$10.00", FormatSigned(decimal.NewFromInt(10), "$"))
	assert.Equal(t, "-$10.00", FormatSigned(decimal.NewFromInt(-10), "$"))
	assert.Equal(t, "+$0.00", FormatSigned(decimal.Zero, "$"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-12,345", FormatNumber(-12345))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", FormatPercent(50))
	assert.Equal(t, "33.3%", FormatPercent(33.34))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long str…", Truncate("long string here", 9))
	assert.Equal(t, "…", Truncate("xy", 1))
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", RenderSparkline(nil))
	got := RenderSparkline([]float64{0, 50, 100})
	assert.Equal(t, 3, len([]rune(got)))
}
