package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"what2cook/internal/dataload"
	"what2cook/internal/testutil"
	"what2cook/internal/translate"
	"what2cook/internal/weekplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Wednesday, Dec 3 2025. The natural week runs Mon Dec 1 - Sun Dec 7.
var testToday = time.Date(2025, 12, 3, 12, 0, 0, 0, time.UTC)

const recipesFixture = `[
	{"id": "r1", "store": "Albert Heijn", "menu_name": "닭갈비",
	 "menu_name_en": "Dak-galbi", "menu_name_nl": "Dak-galbi",
	 "main_ingredients": ["kipfilet"], "shopping_list": ["kipfilet 500g"],
	 "cost_saving_tip": "1+1 세일 활용",
	 "valid_from": "2025-12-01", "valid_until": "2025-12-07",
	 "tags": {"is_spicy": true, "cooking_time": "25 min"}},
	{"id": "r2", "store": "Jumbo", "menu_name": "감자조림",
	 "main_ingredients": ["aardappel"], "shopping_list": ["aardappelen 2kg"],
	 "valid_from": "2025-12-08", "valid_until": "2025-12-14",
	 "tags": {"is_kid_friendly": true, "cooking_time": "45 min"}},
	{"id": "r3", "store": "Aldi", "menu_name": "두부조림",
	 "main_ingredients": ["tofu"], "shopping_list": ["tofu 300g"],
	 "valid_from": "2025-12-01", "valid_until": "2025-12-07",
	 "tags": {"is_vegetarian": true, "is_kid_friendly": true, "cooking_time": "20 min"}}
]`

func newRecipesHandler(t *testing.T) *Handler {
	t.Helper()
	logger := zap.NewNop()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "current_recipes.json"), []byte(recipesFixture), 0o644))

	loader := dataload.NewLoader(dir, logger)
	loader.Reload()

	provider := &testutil.CountingProvider{}
	translator := translate.NewService(testutil.NewFakeTranslationCache(), provider, logger)
	h := New(loader, weekplan.NewResolver(logger), translator, provider, logger)
	h.now = func() time.Time { return testToday }
	return h
}

func getRecipes(t *testing.T, h *Handler, query string) recipesResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes"+query, nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp recipesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleRecipes_WeekBuckets(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "")

	require.Len(t, resp.Current, 2)
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "r1", resp.Current[0].ID)
	assert.Equal(t, "r3", resp.Current[1].ID)
	assert.Equal(t, "r2", resp.Upcoming[0].ID)
}

func TestHandleRecipes_DateBadges(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "?lang=en")

	// Dec 3 -> Dec 7 inclusive is 5 calendar days left.
	require.NotNil(t, resp.Current[0].DateBadge)
	assert.Equal(t, "active", resp.Current[0].DateBadge.Kind)
	assert.Equal(t, "🔥 D-5 (until 12/7)", resp.Current[0].DateBadge.Text)

	require.NotNil(t, resp.Upcoming[0].DateBadge)
	assert.Equal(t, "upcoming", resp.Upcoming[0].DateBadge.Kind)
	assert.Equal(t, "📅 Starts 12/8 (Mon)", resp.Upcoming[0].DateBadge.Text)
}

func TestHandleRecipes_StoreFilter(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "?stores=Aldi")

	require.Len(t, resp.Current, 1)
	assert.Equal(t, "r3", resp.Current[0].ID)
	assert.Empty(t, resp.Upcoming)
}

func TestHandleRecipes_KidFriendlyExcludesSpicy(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "?kidFriendly=1")

	require.Len(t, resp.Current, 1)
	assert.Equal(t, "r3", resp.Current[0].ID)
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "r2", resp.Upcoming[0].ID)
}

func TestHandleRecipes_QuickMeal(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "?quickMeal=true")

	require.Len(t, resp.Current, 2)
	assert.Empty(t, resp.Upcoming) // r2 takes 45 min
}

func TestHandleRecipes_BestDeal(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "?bestDeal=1")

	require.Len(t, resp.Current, 1)
	assert.Equal(t, "r1", resp.Current[0].ID) // "1+1" in the saving tip
}

func TestHandleRecipes_PreferredVariantUsed(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "?lang=en")

	assert.Equal(t, "Dak-galbi", resp.Current[0].MenuName)
}

func TestHandleRecipes_MissingVariantTranslatedOnDemand(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "?lang=en&stores=Aldi")

	// r3 carries no pre-translated variant; the cache/client fills it.
	require.Len(t, resp.Current, 1)
	assert.Equal(t, "두부조림[en]", resp.Current[0].MenuName)
}

func TestHandleRecipes_DefaultLanguageIsKorean(t *testing.T) {
	h := newRecipesHandler(t)

	resp := getRecipes(t, h, "")

	assert.Equal(t, "닭갈비", resp.Current[0].MenuName)
}
