// Package i18n holds the static UI string tables for the three display
// languages. Keys missing from a language fall back to English.
package i18n

import (
	"strings"

	"what2cook/internal/domain"
)

var messages = map[domain.Language]map[string]string{
	domain.LangKO: {
		"nav.recipes": "레시피",
		"nav.deals":   "세일",
		"common.all":  "전체",

		"recipes.tab.thisWeek": "이번 주",
		"recipes.tab.nextWeek": "다음 주",

		"recipes.thisWeek.empty.title": "이번 주 세일이 없습니다",
		"recipes.nextWeek.empty.title": "아직 공개된 다음 주 세일이 없어요!",

		"deals.tab.thisWeek":   "이번 주",
		"deals.tab.nextWeek":   "다음 주",
		"deals.nextWeek.empty": "다음 주 세일 정보 준비 중입니다.",
		"deals.category.main":  "🥩 주재료",
		"deals.category.sub":   "🧂 부재료/양념",
		"deals.category.fruits": "🍎 과일/디저트",

		"dashboard.count.total":      "{total}개의 레시피",
		"dashboard.modal.savingTip":  "절약 팁",
		"dashboard.modal.cookingTime": "조리 시간: {time}",
		"dashboard.dateBadge.until":  "🔥 D-{days} ({date}까지)",
		"dashboard.dateBadge.starts": "📅 {date} ({weekday}) 오픈",

		"bot.welcome":       "뭐해먹지 NL — 이번 주 마트 세일로 차리는 알뜰 밥상",
		"bot.chooseLanguage": "언어를 선택하세요:",
		"bot.languageSaved": "언어가 저장되었습니다.",
		"bot.menu.language": "🌐 언어",
	},
	domain.LangEN: {
		"nav.recipes": "Recipes",
		"nav.deals":   "Deals",
		"common.all":  "All",

		"recipes.tab.thisWeek": "This week",
		"recipes.tab.nextWeek": "Next week",

		"recipes.thisWeek.empty.title": "No deals this week",
		"recipes.nextWeek.empty.title": "Next week's deals aren't available yet.",

		"deals.tab.thisWeek":   "This week",
		"deals.tab.nextWeek":   "Next week",
		"deals.nextWeek.empty": "Next week's deals aren't available yet.",
		"deals.category.main":  "🥩 Main ingredients",
		"deals.category.sub":   "🧂 Seasonings & extras",
		"deals.category.fruits": "🍎 Fruit & dessert",

		"dashboard.count.total":      "{total} recipes",
		"dashboard.modal.savingTip":  "Money-saving tip",
		"dashboard.modal.cookingTime": "Cooking time: {time}",
		"dashboard.dateBadge.until":  "🔥 D-{days} (until {date})",
		"dashboard.dateBadge.starts": "📅 Starts {date} ({weekday})",

		"bot.welcome":       "What2Cook NL — budget-friendly meals with this week's supermarket deals",
		"bot.chooseLanguage": "Pick a language:",
		"bot.languageSaved": "Language saved.",
		"bot.menu.language": "🌐 Language",
	},
	domain.LangNL: {
		"nav.recipes": "Recepten",
		"nav.deals":   "Aanbiedingen",
		"common.all":  "Alles",

		"recipes.tab.thisWeek": "Deze week",
		"recipes.tab.nextWeek": "Volgende week",

		"recipes.thisWeek.empty.title": "Geen aanbiedingen deze week",
		"recipes.nextWeek.empty.title": "Aanbiedingen voor volgende week zijn nog niet beschikbaar.",

		"deals.tab.thisWeek":   "Deze week",
		"deals.tab.nextWeek":   "Volgende week",
		"deals.nextWeek.empty": "Aanbiedingen voor volgende week zijn nog niet beschikbaar.",
		"deals.category.main":  "🥩 Hoofdingrediënten",
		"deals.category.sub":   "🧂 Kruiden & extra's",
		"deals.category.fruits": "🍎 Fruit & dessert",

		"dashboard.count.total":      "{total} recepten",
		"dashboard.modal.savingTip":  "Bespaartip",
		"dashboard.modal.cookingTime": "Bereidingstijd: {time}",
		"dashboard.dateBadge.until":  "🔥 D-{days} (t/m {date})",
		"dashboard.dateBadge.starts": "📅 Start {date} ({weekday})",

		"bot.welcome":       "What2Cook NL — betaalbaar koken met aanbiedingen van deze week",
		"bot.chooseLanguage": "Kies een taal:",
		"bot.languageSaved": "Taal opgeslagen.",
		"bot.menu.language": "🌐 Taal",
	},
}

// T resolves key for lang, interpolating {name} placeholders from vars.
// Unknown keys come back as the key itself so a missing entry is visible
// instead of silent.
func T(lang domain.Language, key string, vars map[string]string) string {
	msg, ok := messages[lang][key]
	if !ok {
		msg, ok = messages[domain.LangEN][key]
	}
	if !ok {
		return key
	}
	return interpolate(msg, vars)
}

func interpolate(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	var b strings.Builder
	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		open += i
		close := strings.IndexByte(template[open:], '}')
		if close < 0 {
			b.WriteString(template[i:])
			break
		}
		close += open
		b.WriteString(template[i:open])
		name := template[open+1 : close]
		if v, ok := vars[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(template[open : close+1])
		}
		i = close + 1
	}
	return b.String()
}
