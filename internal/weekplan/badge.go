package weekplan

import (
	"fmt"
	"math"
	"time"

	"what2cook/internal/domain"
	"what2cook/internal/i18n"
)

// BadgeKind tells the card renderer how to style the date badge.
type BadgeKind string

const (
	BadgeActive   BadgeKind = "active"
	BadgeUpcoming BadgeKind = "upcoming"
	BadgeNone     BadgeKind = "none"
)

// DateBadge is the human-readable countdown or opening-date label shown
// on a recipe card.
type DateBadge struct {
	Text string
	Kind BadgeKind
}

// Badge derives the date badge for a recipe in the given language.
// Countdown uses calendar days (midnight to midnight), inclusive of the
// final day.
func Badge(recipe domain.Recipe, today time.Time, lang domain.Language) DateBadge {
	if recipe.ValidFrom == nil && recipe.ValidUntil == nil {
		return DateBadge{Kind: BadgeNone}
	}

	todayStart := StartOfDay(today)

	if recipe.ValidFrom != nil && recipe.ValidUntil != nil {
		from := StartOfDay(*recipe.ValidFrom)
		until := EndOfDay(*recipe.ValidUntil)

		if !from.After(todayStart) && !todayStart.After(until) {
			return activeBadge(todayStart, until, lang)
		}
		if from.After(todayStart) {
			text := i18n.T(lang, "dashboard.dateBadge.starts", map[string]string{
				"date":    shortDate(from),
				"weekday": lang.WeekdayName(int(from.Weekday())),
			})
			return DateBadge{Text: text, Kind: BadgeUpcoming}
		}
		return DateBadge{Kind: BadgeNone}
	}

	if recipe.ValidUntil != nil {
		until := EndOfDay(*recipe.ValidUntil)
		if !until.Before(todayStart) {
			return activeBadge(todayStart, until, lang)
		}
	}

	return DateBadge{Kind: BadgeNone}
}

func activeBadge(todayStart, until time.Time, lang domain.Language) DateBadge {
	daysLeft := int(math.Ceil(until.Sub(todayStart).Hours() / 24))
	text := i18n.T(lang, "dashboard.dateBadge.until", map[string]string{
		"days": fmt.Sprintf("%d", daysLeft),
		"date": shortDate(until),
	})
	return DateBadge{Text: text, Kind: BadgeActive}
}

// shortDate renders the numeric month/day form used on cards.
func shortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}
