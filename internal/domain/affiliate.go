package domain

import (
	"strconv"
	"strings"
)

// Affiliate platforms.
const (
	PlatformAmazon = "amazon"
	PlatformBol    = "bol"
)

// AffiliateProduct is a recommended product with an affiliate link.
// Legacy snapshots carried per-platform sub-records; the loader flattens
// those into one record per platform.
type AffiliateProduct struct {
	ID          string
	Platform    string
	Name        string
	NameEN      string
	NameNL      string
	Description string
	Benefit     string
	Image       string
	URL         string
	Price       string
	Currency    string
	Badge       string
	Category    string
	Tags        []string
}

// ParsePrice converts a display price like "€120.00" to a number.
// Unparseable input yields 0.
func ParsePrice(price string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r == '€' || r == ',' || r == ' ' {
			return -1
		}
		return r
	}, price)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// CheaperPlatform compares two display prices and returns 1 or 2 for
// the cheaper side, or 0 when equal or either price is missing.
func CheaperPlatform(price1, price2 string) int {
	if price1 == "" || price2 == "" {
		return 0
	}
	v1, v2 := ParsePrice(price1), ParsePrice(price2)
	switch {
	case v1 < v2:
		return 1
	case v2 < v1:
		return 2
	}
	return 0
}
