package bot

import (
	"context"
	"testing"
	"time"

	"what2cook/internal/domain"
	"what2cook/internal/testutil"
	"what2cook/internal/translate"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDealCards_Sections(t *testing.T) {
	products := []domain.SaleProduct{
		{Store: "Albert Heijn", ProductName: "Kipfilet 500g", Price: "€3.49", Discount: "1+1"},
		{Store: "Jumbo", ProductName: "Knoflook 3 stuks", Price: "€0.99"},
		{Store: "Dirk", ProductName: "Druiven 500g"},
	}

	text := dealCards(products, domain.LangEN)

	assert.Contains(t, text, "🥩 Main ingredients")
	assert.Contains(t, text, "• Kipfilet 500g — Albert Heijn €3.49 (1+1)")
	assert.Contains(t, text, "🧂 Seasonings & extras")
	assert.Contains(t, text, "• Knoflook 3 stuks — Jumbo €0.99")
	assert.Contains(t, text, "🍎 Fruit & dessert")
	assert.Contains(t, text, "• Druiven 500g — Dirk")
}

func TestDealCards_SkipsEmptySections(t *testing.T) {
	products := []domain.SaleProduct{
		{Store: "Aldi", ProductName: "Druiven 500g"},
	}

	text := dealCards(products, domain.LangNL)

	assert.Contains(t, text, "🍎 Fruit & dessert")
	assert.NotContains(t, text, "🥩")
	assert.NotContains(t, text, "🧂")
}

func TestRecipeCards_Localization(t *testing.T) {
	translator := translate.NewService(testutil.NewFakeTranslationCache(), &testutil.CountingProvider{}, zap.NewNop())
	b := &Bot{
		translator: translator,
		logger:     zap.NewNop(),
		now:        func() time.Time { return time.Date(2025, 12, 3, 12, 0, 0, 0, time.UTC) },
	}

	until := time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)
	recipe := testutil.NewTestRecipe("r1", "Albert Heijn", "닭갈비")
	recipe.MenuNameEN = "Dak-galbi"
	recipe.CostSavingTip = "1+1 세일 활용"
	recipe.ValidUntil = &until

	text := b.recipeCards(context.Background(), []domain.Recipe{recipe}, domain.LangEN)

	assert.Contains(t, text, "1 recipes")
	assert.Contains(t, text, "🍳 Dak-galbi (Albert Heijn)")
	assert.Contains(t, text, "Cooking time: 30 min")
	// No pre-translated tip, so the cache/client supplies one.
	assert.Contains(t, text, "💡 Money-saving tip: 1+1 세일 활용[en]")
	assert.Contains(t, text, "🔥 D-5 (until 12/7)")
}

func TestRecipeCards_KoreanUsesOriginalText(t *testing.T) {
	provider := &testutil.CountingProvider{}
	translator := translate.NewService(testutil.NewFakeTranslationCache(), provider, zap.NewNop())
	b := &Bot{
		translator: translator,
		logger:     zap.NewNop(),
		now:        time.Now,
	}

	recipe := testutil.NewTestRecipe("r1", "Jumbo", "감자조림")
	text := b.recipeCards(context.Background(), []domain.Recipe{recipe}, domain.LangKO)

	assert.Contains(t, text, "🍳 감자조림 (Jumbo)")
	assert.Equal(t, 0, provider.CallCount())
}
