package domain

import "time"

// SaleProduct is a single supermarket sale item from a weekly snapshot.
// Items carry no stable identity; callers key on store+name+position.
type SaleProduct struct {
	Store       string
	ProductName string
	Price       string
	Discount    string
	ValidFrom   *time.Time
	ValidUntil  *time.Time
}

// CategoryBuckets is the three-way partition of a product list.
// Every input product lands in exactly one bucket.
type CategoryBuckets struct {
	Main   []SaleProduct
	Sub    []SaleProduct
	Fruits []SaleProduct
}

// Total returns the number of products across all buckets.
func (b CategoryBuckets) Total() int {
	return len(b.Main) + len(b.Sub) + len(b.Fruits)
}
