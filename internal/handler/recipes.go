package handler

import (
	"net/http"
	"strings"
	"time"

	"what2cook/internal/domain"
	"what2cook/internal/filter"
	"what2cook/internal/weekplan"
)

type recipeTagsDTO struct {
	IsSpicy        bool   `json:"is_spicy"`
	IsVegetarian   bool   `json:"is_vegetarian"`
	IsKidFriendly  bool   `json:"is_kid_friendly"`
	IsPartyFood    bool   `json:"is_party_food"`
	IsAlcoholSnack bool   `json:"is_alcohol_snack"`
	CookingTime    string `json:"cooking_time"`
}

type dateBadgeDTO struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

type recipeDTO struct {
	ID              string        `json:"id"`
	Store           string        `json:"store"`
	MenuName        string        `json:"menu_name"`
	Description     string        `json:"description"`
	MainIngredients []string      `json:"main_ingredients"`
	ShoppingList    []string      `json:"shopping_list"`
	CostSavingTip   string        `json:"cost_saving_tip,omitempty"`
	Tags            recipeTagsDTO `json:"tags"`
	ValidFrom       string        `json:"valid_from,omitempty"`
	ValidUntil      string        `json:"valid_until,omitempty"`
	DateBadge       *dateBadgeDTO `json:"date_badge,omitempty"`
}

type recipesResponse struct {
	Current  []recipeDTO `json:"current"`
	Upcoming []recipeDTO `json:"upcoming"`
}

// handleRecipes serves the weekly recipe view: resolved into current
// and upcoming buckets, filtered, badged, and optionally localized.
func (h *Handler) handleRecipes(w http.ResponseWriter, r *http.Request) {
	snap := h.loader.Snapshot()
	today := h.now()
	lang := domain.ParseLanguage(r.URL.Query().Get("lang"))
	if r.URL.Query().Get("lang") == "" {
		lang = domain.LangKO
	}

	all := append(append([]domain.Recipe{}, snap.CurrentRecipes...), snap.NextRecipes...)
	buckets := h.resolver.Resolve(all, today)

	state := filterStateFromQuery(r)
	current := state.Apply(buckets.Current)
	upcoming := state.Apply(buckets.Upcoming)

	resp := recipesResponse{
		Current:  h.recipeDTOs(r, current, today, lang),
		Upcoming: h.recipeDTOs(r, upcoming, today, lang),
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// filterStateFromQuery parses the store list and tag toggles. Toggles
// apply in a fixed order so the kid-friendly/spicy exclusion resolves
// the same way every time.
func filterStateFromQuery(r *http.Request) filter.State {
	state := filter.NewState()

	if stores := r.URL.Query().Get("stores"); stores != "" {
		for _, store := range strings.Split(stores, ",") {
			if store = strings.TrimSpace(store); store != "" {
				state.ToggleStore(store)
			}
		}
	}

	for _, name := range []string{
		"kidFriendly", "spicy", "vegetarian", "quickMeal",
		"bestDeal", "partyFood", "alcoholSnack",
	} {
		if isTruthy(r.URL.Query().Get(name)) {
			state.Toggle(name)
		}
	}

	state.Query = r.URL.Query().Get("q")
	return state
}

func isTruthy(v string) bool {
	return v == "1" || v == "true"
}

func (h *Handler) recipeDTOs(r *http.Request, recipes []domain.Recipe, today time.Time, lang domain.Language) []recipeDTO {
	out := make([]recipeDTO, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, h.recipeDTO(r, recipe, today, lang))
	}
	return out
}

func (h *Handler) recipeDTO(r *http.Request, recipe domain.Recipe, today time.Time, lang domain.Language) recipeDTO {
	dto := recipeDTO{
		ID:              recipe.ID,
		Store:           recipe.Store,
		MenuName:        h.localize(r, recipe.MenuName, recipe.LocalizedMenuName(lang), lang),
		Description:     h.localize(r, recipe.Description, recipe.LocalizedDescription(lang), lang),
		MainIngredients: recipe.MainIngredients,
		ShoppingList:    recipe.ShoppingList,
		CostSavingTip:   h.localize(r, recipe.CostSavingTip, recipe.LocalizedCostSavingTip(lang), lang),
		Tags: recipeTagsDTO{
			IsSpicy:        recipe.Tags.IsSpicy,
			IsVegetarian:   recipe.Tags.IsVegetarian,
			IsKidFriendly:  recipe.Tags.IsKidFriendly,
			IsPartyFood:    recipe.Tags.IsPartyFood,
			IsAlcoholSnack: recipe.Tags.IsAlcoholSnack,
			CookingTime:    recipe.Tags.CookingTime,
		},
	}
	if recipe.ValidFrom != nil {
		dto.ValidFrom = recipe.ValidFrom.Format("2006-01-02")
	}
	if recipe.ValidUntil != nil {
		dto.ValidUntil = recipe.ValidUntil.Format("2006-01-02")
	}
	if badge := weekplan.Badge(recipe, today, lang); badge.Kind != weekplan.BadgeNone {
		dto.DateBadge = &dateBadgeDTO{Text: badge.Text, Kind: string(badge.Kind)}
	}
	return dto
}

// localize returns the pre-translated variant when one exists; when the
// variant pick fell through to the original (Korean) text and another
// language was requested, the translation cache/client fills the gap.
func (h *Handler) localize(r *http.Request, original, picked string, lang domain.Language) string {
	if lang == domain.LangKO || picked != original || original == "" {
		return picked
	}
	translated := h.translator.Translate(r.Context(), []string{original}, lang)
	return translated[0]
}
