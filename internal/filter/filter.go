// Package filter narrows recipe and deal collections by store
// selection, tag toggles, and free-text search.
package filter

import (
	"strings"

	"what2cook/internal/domain"
)

// Keywords that mark a recipe as a standout discount.
var bestDealKeywords = []string{"1+1", "2e halve", "gratis", "korting", "sale", "bonus"}

// State is one user's filter selection. The zero value selects
// everything: SelectAll defaults to false, so construct with NewState.
type State struct {
	SelectedStores map[string]bool
	SelectAll      bool

	KidFriendly  bool
	Spicy        bool
	Vegetarian   bool
	QuickMeal    bool
	BestDeal     bool
	PartyFood    bool
	AlcoholSnack bool

	Query string
}

// NewState returns the default state: all stores, no toggles.
func NewState() State {
	return State{
		SelectedStores: make(map[string]bool),
		SelectAll:      true,
	}
}

// Toggle flips the named boolean filter. Kid-friendly and spicy are
// mutually exclusive: kid-friendly meals must never be spicy, so
// enabling one clears the other instead of rejecting the toggle.
func (s *State) Toggle(name string) {
	switch name {
	case "kidFriendly":
		s.KidFriendly = !s.KidFriendly
		if s.KidFriendly {
			s.Spicy = false
		}
	case "spicy":
		s.Spicy = !s.Spicy
		if s.Spicy {
			s.KidFriendly = false
		}
	case "vegetarian":
		s.Vegetarian = !s.Vegetarian
	case "quickMeal":
		s.QuickMeal = !s.QuickMeal
	case "bestDeal":
		s.BestDeal = !s.BestDeal
	case "partyFood":
		s.PartyFood = !s.PartyFood
	case "alcoholSnack":
		s.AlcoholSnack = !s.AlcoholSnack
	}
}

// ToggleStore adds or removes a store from the selection and leaves
// select-all mode.
func (s *State) ToggleStore(store string) {
	s.SelectAll = false
	if s.SelectedStores == nil {
		s.SelectedStores = make(map[string]bool)
	}
	if s.SelectedStores[store] {
		delete(s.SelectedStores, store)
	} else {
		s.SelectedStores[store] = true
	}
}

// Apply returns the recipes matching the state, preserving order.
// Active tag toggles combine conjunctively.
func (s State) Apply(recipes []domain.Recipe) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range recipes {
		if s.matchesRecipe(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s State) matchesRecipe(r domain.Recipe) bool {
	if !s.SelectAll && !s.SelectedStores[r.Store] {
		return false
	}

	if s.KidFriendly {
		if !r.Tags.IsKidFriendly {
			return false
		}
		// Safety net: a spicy recipe never passes the kid filter even
		// if it is mistagged kid-friendly.
		if r.Tags.IsSpicy {
			return false
		}
	}
	if s.Spicy && !r.Tags.IsSpicy {
		return false
	}
	if s.Vegetarian && !r.Tags.IsVegetarian {
		return false
	}
	if s.PartyFood && !r.Tags.IsPartyFood {
		return false
	}
	if s.AlcoholSnack && !r.Tags.IsAlcoholSnack {
		return false
	}

	if s.QuickMeal {
		minutes := ParseCookingTime(r.Tags.CookingTime)
		if minutes == 0 || minutes > 30 {
			return false
		}
	}

	if s.BestDeal && !HasBestDeal(r) {
		return false
	}

	return true
}

// ApplyProducts returns the sale products matching the store selection
// and free-text query, preserving order. The query matches product or
// store name, case-insensitively.
func (s State) ApplyProducts(products []domain.SaleProduct) []domain.SaleProduct {
	query := strings.ToLower(strings.TrimSpace(s.Query))

	var out []domain.SaleProduct
	for _, p := range products {
		if !s.SelectAll && !s.SelectedStores[p.Store] {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.ProductName), query) &&
			!strings.Contains(strings.ToLower(p.Store), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ParseCookingTime extracts the leading integer from a free-text
// cooking time like "25 min" or "45 minuten". Unparseable input yields
// 0, which the quick-meal filter treats as unknown and excludes.
func ParseCookingTime(s string) int {
	minutes := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			minutes = minutes*10 + int(r-'0')
			seen = true
		} else if seen {
			break
		}
	}
	if !seen {
		return 0
	}
	return minutes
}

// HasBestDeal reports whether the recipe's saving tip or ingredient
// list mentions a discount keyword.
func HasBestDeal(r domain.Recipe) bool {
	target := strings.ToLower(r.CostSavingTip + " " + strings.Join(r.MainIngredients, " "))
	for _, k := range bestDealKeywords {
		if strings.Contains(target, k) {
			return true
		}
	}
	return false
}
