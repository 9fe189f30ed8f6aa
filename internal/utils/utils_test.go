package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"100", "₹100"},
		{"999", "₹999"},
		{"1000", "₹1,000"},
		{"12345", "₹12,345"},
		{"123456", "₹1,23,456"},
		{"1234567.5", "₹12,34,568"},
		{"10000000", "₹1,00,00,000"},
		{"2500.49", "₹2,500"},
		{"-1500", "-₹1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatSignedINR(t *testing.T) {
	assert.Equal(t, "+₹5,000", FormatSignedINR("+", decimal.NewFromInt(5000)))
	assert.Equal(t, "-₹120", FormatSignedINR("-", decimal.NewFromInt(120)))
}

func TestParseAmountInput(t *testing.T) {
	assert.Equal(t, "1250", ParseAmountInput(" ₹1,250 "))
	assert.Equal(t, "1250.50", ParseAmountInput("1250.50"))
}

func TestParseDateInput(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 3, 14, 14, 30, 15, 0, loc)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "", want: now},
		{in: "today", want: now},
		{in: "yesterday", want: now.AddDate(0, 0, -1)},
		{in: "2025-03-01", want: time.Date(2025, 3, 1, 14, 30, 15, 0, loc)},
		{in: "2025-03-01 09:15", want: time.Date(2025, 3, 1, 9, 15, 0, 0, loc)},
		{in: "01/03/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateInput(tt.in, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Jan", MonthName(1))
	assert.Equal(t, "Dec", MonthName(12))
	assert.Equal(t, "Month 13", MonthName(13))
}
