package domain

import "time"

// RecipeTags holds the feature flags used by the filter engine.
type RecipeTags struct {
	IsSpicy        bool
	IsVegetarian   bool
	IsKidFriendly  bool
	IsPartyFood    bool
	IsAlcoholSnack bool
	CookingTime    string
}

// Recipe is a weekly menu suggestion tied to a store's sale window.
// The *EN/*NL fields are pre-translated variants produced offline; when
// absent, user-facing text is translated on demand.
type Recipe struct {
	ID              string
	Store           string
	MenuName        string
	MenuNameEN      string
	MenuNameNL      string
	Description     string
	DescriptionEN   string
	DescriptionNL   string
	MainIngredients []string
	Tags            RecipeTags
	ShoppingList    []string
	CostSavingTip   string
	CostSavingTipEN string
	CostSavingTipNL string
	ValidFrom       *time.Time
	ValidUntil      *time.Time
}

// LocalizedMenuName returns the pre-translated menu name for lang,
// falling back to the original when no variant exists.
func (r Recipe) LocalizedMenuName(lang Language) string {
	return pickVariant(lang, r.MenuName, r.MenuNameEN, r.MenuNameNL)
}

// LocalizedDescription returns the pre-translated description for lang.
func (r Recipe) LocalizedDescription(lang Language) string {
	return pickVariant(lang, r.Description, r.DescriptionEN, r.DescriptionNL)
}

// LocalizedCostSavingTip returns the pre-translated saving tip for lang.
func (r Recipe) LocalizedCostSavingTip(lang Language) string {
	return pickVariant(lang, r.CostSavingTip, r.CostSavingTipEN, r.CostSavingTipNL)
}

func pickVariant(lang Language, original, en, nl string) string {
	switch lang {
	case LangEN:
		if en != "" {
			return en
		}
	case LangNL:
		if nl != "" {
			return nl
		}
	}
	return original
}

// WeekBuckets splits recipes into the current natural week and the
// upcoming one. Windows that ended before today appear in neither.
type WeekBuckets struct {
	Current  []Recipe
	Upcoming []Recipe
}
