// Package catalog buckets sale products into main / sub / fruit
// categories by keyword matching on the product name.
package catalog

import (
	"strings"

	"what2cook/internal/domain"
)

// Keyword tables are the classification spec: Dutch/English vocabulary
// matched as substrings against the lower-cased product name. Fruit is
// tested first, then main, then sub; anything unmatched is a main
// ingredient.
var fruitKeywords = []string{
	"druiven", "druif", "grape", "appel", "apple", "aardbei", "strawberry",
	"banaan", "banana", "sinaasappel", "orange", "mandarijn", "mandarin",
	"blauwe bessen", "blueberry", "framboos", "raspberry", "citroen", "lemon",
	"kiwi", "peer", "pear", "mango", "ananas", "pineapple", "perzik", "peach",
	"kersen", "cherry", "pruim", "plum", "abrikoos", "apricot", "fruit",
}

var mainKeywords = []string{
	"speklappen", "kipfilet", "kippendijen", "rundvlees", "varkensvlees",
	"gehakt", "zalm", "vis", "fish", "tofu", "aardappelen", "aardappel",
	"kool", "cabbage", "ui", "uien", "onion", "wortel", "wortelen",
	"carrot", "paprika", "pepper", "tomaat", "tomaten", "tomato", "champignon",
	"mushroom", "broccoli", "spinazie", "spinach",
}

var subKeywords = []string{
	"knoflook", "garlic", "gember", "ginger", "soja", "soy", "azijn", "vinegar",
	"olijfolie", "olive oil", "zout", "salt", "peper", "pepper", "suiker", "sugar",
	"melk", "milk", "kaas", "cheese", "boter", "butter", "ei", "eieren", "egg",
}

// Classify partitions products into category buckets. Every product
// appears in exactly one bucket; relative order is preserved.
func Classify(products []domain.SaleProduct) domain.CategoryBuckets {
	var buckets domain.CategoryBuckets

	for _, p := range products {
		name := strings.ToLower(p.ProductName)

		switch {
		case matchesAny(name, fruitKeywords):
			buckets.Fruits = append(buckets.Fruits, p)
		case matchesAny(name, mainKeywords):
			buckets.Main = append(buckets.Main, p)
		case matchesAny(name, subKeywords):
			buckets.Sub = append(buckets.Sub, p)
		default:
			buckets.Main = append(buckets.Main, p)
		}
	}

	return buckets
}

func matchesAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}
