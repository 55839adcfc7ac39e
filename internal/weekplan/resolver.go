// Package weekplan decides which natural week (Mon–Sun) a recipe's sale
// window belongs to and renders the countdown badge for it.
package weekplan

import (
	"time"

	"what2cook/internal/domain"

	"go.uber.org/zap"
)

// Days after Monday on which each store's sale week starts. Most stores
// switch on Monday; Jumbo and Dirk switch on Wednesday.
var storeSaleStartOffset = map[string]int{
	"Albert Heijn": 0,
	"Jumbo":        2,
	"Dirk":         2,
	"Aldi":         0,
	"Plus":         0,
	"Hoogvliet":    0,
	"Coop":         0,
}

// Resolver buckets recipes into current and upcoming weeks.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a week resolver.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// WeekBounds returns Monday 00:00:00 and Sunday 23:59:59 of the week
// containing t, in t's location.
func WeekBounds(t time.Time) (monday, sunday time.Time) {
	day := StartOfDay(t)
	sinceMonday := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		sinceMonday = 6
	}
	monday = day.AddDate(0, 0, -sinceMonday)
	sunday = EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// StartOfDay truncates t to midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay moves t to the last second of its day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// Resolve splits recipes into current-week and upcoming-week buckets
// relative to today. Recipes whose window ended before today are
// dropped. A recipe without explicit dates gets a 7-day window inferred
// from its store's start weekday; a recipe with neither dates nor a
// recognized store defaults into the current bucket.
func (r *Resolver) Resolve(recipes []domain.Recipe, today time.Time) domain.WeekBuckets {
	monday, sunday := WeekBounds(today)
	todayStart := StartOfDay(today)

	var buckets domain.WeekBuckets

	for _, recipe := range recipes {
		from, until, ok := r.window(recipe, todayStart, monday)
		if !ok {
			// No window could be derived; legacy behavior keeps the
			// recipe visible this week rather than dropping it.
			r.logger.Warn("recipe has no usable sale window, defaulting to current week",
				zap.String("store", recipe.Store),
				zap.String("menu", recipe.MenuName),
			)
			buckets.Current = append(buckets.Current, recipe)
			continue
		}

		switch {
		case !from.After(sunday) && !until.Before(monday):
			buckets.Current = append(buckets.Current, recipe)
		case from.After(sunday):
			buckets.Upcoming = append(buckets.Upcoming, recipe)
		default:
			// Window ended before this week; excluded.
		}
	}

	return buckets
}

// window derives the recipe's effective sale window. ok is false only
// when no dates are present and the store has no known start day.
func (r *Resolver) window(recipe domain.Recipe, todayStart, monday time.Time) (from, until time.Time, ok bool) {
	if recipe.ValidFrom != nil && recipe.ValidUntil != nil {
		return StartOfDay(*recipe.ValidFrom), EndOfDay(*recipe.ValidUntil), true
	}

	offset, known := storeSaleStartOffset[recipe.Store]
	if !known {
		return time.Time{}, time.Time{}, false
	}

	start := monday.AddDate(0, 0, offset)
	if start.Before(todayStart) {
		// This week's start already passed; the inferred sale is next
		// week's occurrence.
		start = start.AddDate(0, 0, 7)
	}
	return start, EndOfDay(start.AddDate(0, 0, 6)), true
}
