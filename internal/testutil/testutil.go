package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"what2cook/internal/domain"
)

// NewTestRecipe creates a recipe with sensible defaults for tests.
func NewTestRecipe(id, store, menuName string) domain.Recipe {
	return domain.Recipe{
		ID:              id,
		Store:           store,
		MenuName:        menuName,
		Description:     "test description",
		MainIngredients: []string{"kipfilet", "ui"},
		ShoppingList:    []string{"kipfilet 500g", "uien 1kg"},
		Tags:            domain.RecipeTags{CookingTime: "30 min"},
	}
}

// NewTestProduct creates a sale product for tests.
func NewTestProduct(store, name string) domain.SaleProduct {
	return domain.SaleProduct{
		Store:       store,
		ProductName: name,
		Price:       "€2.99",
		Discount:    "1+1",
	}
}

// DatePtr returns a pointer to t, for filling optional date fields.
func DatePtr(t time.Time) *time.Time { return &t }

// FakeTranslationCache is an in-memory repository.TranslationCache for
// tests that care about values rather than call expectations.
type FakeTranslationCache struct {
	mu      sync.Mutex
	Entries map[string]string
}

func NewFakeTranslationCache() *FakeTranslationCache {
	return &FakeTranslationCache{Entries: make(map[string]string)}
}

func (f *FakeTranslationCache) Get(cacheKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Entries[cacheKey], nil
}

func (f *FakeTranslationCache) Set(cacheKey string, lang domain.Language, sourceText, translated string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Entries[cacheKey] = translated
	return nil
}

// CountingProvider wraps a translation function and counts outbound
// calls so cache-hit behavior can be asserted.
type CountingProvider struct {
	mu    sync.Mutex
	Calls int
	Fn    func(texts []string, target domain.Language) ([]string, error)
}

func (p *CountingProvider) Translate(_ context.Context, texts []string, target domain.Language) ([]string, error) {
	p.mu.Lock()
	p.Calls++
	p.mu.Unlock()
	if p.Fn != nil {
		return p.Fn(texts, target)
	}
	// Default: tag every text so tests can tell output from input.
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = fmt.Sprintf("%s[%s]", t, target)
	}
	return out, nil
}

// CallCount returns the number of provider invocations so far.
func (p *CountingProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Calls
}
