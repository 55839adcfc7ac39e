package bot

import (
	"context"
	"fmt"
	"strings"

	"what2cook/internal/catalog"
	"what2cook/internal/domain"
	"what2cook/internal/i18n"
	"what2cook/internal/weekplan"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// mainMenuMarkup returns the main menu keyboard in the chat's language.
func mainMenuMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	thisWeek := markup.Data(i18n.T(lang, "recipes.tab.thisWeek", nil), btnThisWeek.Unique)
	nextWeek := markup.Data(i18n.T(lang, "recipes.tab.nextWeek", nil), btnNextWeek.Unique)
	deals := markup.Data(i18n.T(lang, "nav.deals", nil), btnDeals.Unique)
	language := markup.Data(i18n.T(lang, "bot.menu.language", nil), btnLanguage.Unique)
	markup.Inline(
		markup.Row(thisWeek, nextWeek),
		markup.Row(deals, language),
	)
	return markup
}

// handleStart handles /start command
func (b *Bot) handleStart(c tele.Context) error {
	lang := chatLanguage(c)
	b.logger.Info("chat started bot",
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("language", string(lang)),
	)
	return c.Send(i18n.T(lang, "bot.welcome", nil), mainMenuMarkup(lang))
}

func (b *Bot) handleThisWeek(c tele.Context) error {
	lang := chatLanguage(c)
	buckets := b.weekBuckets()
	if len(buckets.Current) == 0 {
		return c.Send(i18n.T(lang, "recipes.thisWeek.empty.title", nil), mainMenuMarkup(lang))
	}
	return c.Send(b.recipeCards(context.Background(), buckets.Current, lang), mainMenuMarkup(lang))
}

func (b *Bot) handleNextWeek(c tele.Context) error {
	lang := chatLanguage(c)
	buckets := b.weekBuckets()
	if len(buckets.Upcoming) == 0 {
		return c.Send(i18n.T(lang, "recipes.nextWeek.empty.title", nil), mainMenuMarkup(lang))
	}
	return c.Send(b.recipeCards(context.Background(), buckets.Upcoming, lang), mainMenuMarkup(lang))
}

func (b *Bot) handleDeals(c tele.Context) error {
	lang := chatLanguage(c)
	snap := b.loader.Snapshot()
	if len(snap.CurrentSales) == 0 {
		return c.Send(i18n.T(lang, "deals.nextWeek.empty", nil), mainMenuMarkup(lang))
	}
	return c.Send(dealCards(snap.CurrentSales, lang), mainMenuMarkup(lang))
}

func (b *Bot) weekBuckets() domain.WeekBuckets {
	snap := b.loader.Snapshot()
	all := append(append([]domain.Recipe{}, snap.CurrentRecipes...), snap.NextRecipes...)
	return b.resolver.Resolve(all, b.now())
}

// recipeCards renders one message with a short card per recipe.
func (b *Bot) recipeCards(ctx context.Context, recipes []domain.Recipe, lang domain.Language) string {
	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "dashboard.count.total", map[string]string{
		"total": fmt.Sprintf("%d", len(recipes)),
	}))
	sb.WriteString("\n")

	for _, recipe := range recipes {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("🍳 %s (%s)\n", b.localized(ctx, recipe.MenuName, recipe.LocalizedMenuName(lang), lang), recipe.Store))
		if desc := b.localized(ctx, recipe.Description, recipe.LocalizedDescription(lang), lang); desc != "" {
			sb.WriteString(desc)
			sb.WriteString("\n")
		}
		if recipe.Tags.CookingTime != "" {
			sb.WriteString(i18n.T(lang, "dashboard.modal.cookingTime", map[string]string{
				"time": recipe.Tags.CookingTime,
			}))
			sb.WriteString("\n")
		}
		if tip := b.localized(ctx, recipe.CostSavingTip, recipe.LocalizedCostSavingTip(lang), lang); tip != "" {
			sb.WriteString(fmt.Sprintf("💡 %s: %s\n", i18n.T(lang, "dashboard.modal.savingTip", nil), tip))
		}
		if badge := weekplan.Badge(recipe, b.now(), lang); badge.Kind != weekplan.BadgeNone {
			sb.WriteString(badge.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// dealCards renders the classified deals view as text sections.
func dealCards(products []domain.SaleProduct, lang domain.Language) string {
	buckets := catalog.Classify(products)

	var sb strings.Builder
	writeSection := func(key string, products []domain.SaleProduct) {
		if len(products) == 0 {
			return
		}
		sb.WriteString(i18n.T(lang, key, nil))
		sb.WriteString("\n")
		for _, p := range products {
			sb.WriteString(fmt.Sprintf("• %s — %s", p.ProductName, p.Store))
			if p.Price != "" {
				sb.WriteString(" " + p.Price)
			}
			if p.Discount != "" {
				sb.WriteString(" (" + p.Discount + ")")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	writeSection("deals.category.main", buckets.Main)
	writeSection("deals.category.sub", buckets.Sub)
	writeSection("deals.category.fruits", buckets.Fruits)
	return strings.TrimRight(sb.String(), "\n")
}

// localized picks the pre-translated variant or falls back to the
// translation cache/client for Korean-only text.
func (b *Bot) localized(ctx context.Context, original, picked string, lang domain.Language) string {
	if lang == domain.LangKO || picked != original || original == "" {
		return picked
	}
	return b.translator.Translate(ctx, []string{original}, lang)[0]
}
