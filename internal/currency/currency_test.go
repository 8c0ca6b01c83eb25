package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "usd", amount: "1234.5", code: "USD", want: "$1,234.50"},
		{name: "usd small", amount: "0.05", code: "USD", want: "$0.05"},
		{name: "eur german grouping", amount: "1234.5", code: "EUR", want: "1.234,50 €"},
		{name: "gbp", amount: "99.999", code: "GBP", want: "£100.00"},
		{name: "jpy has no minor unit", amount: "1234.56", code: "JPY", want: "¥1,235"},
		{name: "negative", amount: "-20", code: "USD", want: "-$20.00"},
		{name: "large amount stays exact", amount: "12345678901234567.89", code: "USD", want: "$12,345,678,901,234,567.89"},
		{name: "large eur", amount: "98765432109876543.21", code: "EUR", want: "98.765.432.109.876.543,21 €"},
		{name: "large jpy", amount: "9007199254740993", code: "JPY", want: "¥9,007,199,254,740,993"},
		{name: "no grouping below a thousand", amount: "999.994", code: "USD", want: "$999.99"},
		{name: "unknown falls back to usd", amount: "3", code: "XYZ", want: "$3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.amount), tt.code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeparatorsGroupDigits(t *testing.T) {
	tests := []struct {
		name   string
		layout separators
		digits string
		want   string
	}{
		{name: "thousands", layout: separators{group: ",", primary: 3, secondary: 3}, digits: "1234567", want: "1,234,567"},
		{name: "exact group", layout: separators{group: ",", primary: 3, secondary: 3}, digits: "123", want: "123"},
		{name: "lakh", layout: separators{group: ",", primary: 3, secondary: 2}, digits: "12345678", want: "1,23,45,678"},
		{name: "no grouping", layout: separators{}, digits: "1234567", want: "1234567"},
		{name: "dot separator", layout: separators{group: ".", primary: 3, secondary: 3}, digits: "1000", want: "1.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.layout.groupDigits(tt.digits))
		})
	}
}

func TestLocaleSeparators(t *testing.T) {
	assert.Equal(t, ",", layouts["USD"].group)
	assert.Equal(t, ".", layouts["USD"].decimal)
	assert.Equal(t, ".", layouts["EUR"].group)
	assert.Equal(t, ",", layouts["EUR"].decimal)
	assert.Equal(t, 3, layouts["USD"].primary)
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "€", Symbol("EUR"))
	assert.Equal(t, "£", Symbol("GBP"))
	assert.Equal(t, "¥", Symbol("JPY"))
	assert.Equal(t, "₹", Symbol("INR"))
	assert.Equal(t, "Rs", Symbol("LKR"))
	assert.Equal(t, "CHF", Symbol("CHF"))
}

func TestScale(t *testing.T) {
	assert.Equal(t, 2, Scale("USD"))
	assert.Equal(t, 0, Scale("JPY"))
	assert.Equal(t, 2, Scale("not-a-code"))
}

func TestAvailableCoversEveryStyle(t *testing.T) {
	codes := Available()
	assert.Len(t, codes, len(styles))
	for _, code := range codes {
		_, ok := styles[code]
		assert.True(t, ok, "no style for %s", code)
	}
}
