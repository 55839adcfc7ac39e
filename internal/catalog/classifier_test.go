package catalog

import (
	"testing"

	"what2cook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		expected    string
	}{
		{
			name:        "chicken fillet is main",
			productName: "AH Kipfilet 500g",
			expected:    "main",
		},
		{
			name:        "oranges are fruit",
			productName: "Sinaasappels net 2kg",
			expected:    "fruits",
		},
		{
			name:        "garlic is sub",
			productName: "Knoflook 3 stuks",
			expected:    "sub",
		},
		{
			name:        "unmatched defaults to main",
			productName: "Stroopwafels 8 stuks",
			expected:    "main",
		},
		{
			name:        "fruit wins over main keyword overlap",
			productName: "Appel-ui chutney",
			expected:    "fruits",
		},
		{
			name:        "case insensitive",
			productName: "GEHAKT half-om-half",
			expected:    "main",
		},
		{
			name:        "english keyword",
			productName: "Blueberry bakje 300g",
			expected:    "fruits",
		},
		{
			name:        "dairy is sub",
			productName: "Goudse kaas jong belegen",
			expected:    "sub",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := Classify([]domain.SaleProduct{{ProductName: tt.productName}})

			assert.Equal(t, 1, buckets.Total())

			var got string
			switch {
			case len(buckets.Main) == 1:
				got = "main"
			case len(buckets.Sub) == 1:
				got = "sub"
			case len(buckets.Fruits) == 1:
				got = "fruits"
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassify_Partition(t *testing.T) {
	products := []domain.SaleProduct{
		{Store: "Albert Heijn", ProductName: "Kipfilet 500g"},
		{Store: "Jumbo", ProductName: "Knoflook 3 stuks"},
		{Store: "Lidl", ProductName: "Aardbeien 400g"},
		{Store: "Plus", ProductName: "Stroopwafels"},
		{Store: "Dirk", ProductName: "Verse melk 1L"},
		{Store: "Coop", ProductName: ""},
	}

	buckets := Classify(products)

	// Union equals input.
	assert.Equal(t, len(products), buckets.Total())

	// Pairwise disjoint: no product name shows up in two buckets.
	seen := make(map[string]int)
	for _, p := range buckets.Main {
		seen[p.Store+"/"+p.ProductName]++
	}
	for _, p := range buckets.Sub {
		seen[p.Store+"/"+p.ProductName]++
	}
	for _, p := range buckets.Fruits {
		seen[p.Store+"/"+p.ProductName]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "product %s classified more than once", key)
	}
}

func TestClassify_Empty(t *testing.T) {
	buckets := Classify(nil)
	assert.Equal(t, 0, buckets.Total())
}
