package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		expected float64
	}{
		{
			name:     "euro prefix",
			price:    "€120.00",
			expected: 120,
		},
		{
			name:     "with thousands comma",
			price:    "€1,299.99",
			expected: 1299.99,
		},
		{
			name:     "plain number",
			price:    "15.50",
			expected: 15.5,
		},
		{
			name:     "unparseable",
			price:    "gratis",
			expected: 0,
		},
		{
			name:     "empty",
			price:    "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePrice(tt.price))
		})
	}
}

func TestCheaperPlatform(t *testing.T) {
	tests := []struct {
		name     string
		price1   string
		price2   string
		expected int
	}{
		{name: "first cheaper", price1: "€10.00", price2: "€12.00", expected: 1},
		{name: "second cheaper", price1: "€25.00", price2: "€19.99", expected: 2},
		{name: "equal", price1: "€10.00", price2: "€10.00", expected: 0},
		{name: "missing price", price1: "", price2: "€10.00", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheaperPlatform(tt.price1, tt.price2))
		})
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LangKO, ParseLanguage("ko"))
	assert.Equal(t, LangNL, ParseLanguage("nl"))
	assert.Equal(t, LangEN, ParseLanguage("en"))
	assert.Equal(t, LangEN, ParseLanguage("de"))
	assert.Equal(t, LangEN, ParseLanguage(""))
}

func TestLanguage_WeekdayName(t *testing.T) {
	assert.Equal(t, "월", LangKO.WeekdayName(1))
	assert.Equal(t, "wo", LangNL.WeekdayName(3))
	assert.Equal(t, "Sun", LangEN.WeekdayName(0))
	assert.Equal(t, "", LangEN.WeekdayName(7))
}
