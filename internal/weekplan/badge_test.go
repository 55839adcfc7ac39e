package weekplan

import (
	"testing"
	"time"

	"what2cook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBadge(t *testing.T) {
	// Wednesday 2025-12-03.
	today := time.Date(2025, 12, 3, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		from         *time.Time
		until        *time.Time
		lang         domain.Language
		expectedKind BadgeKind
		expectedText string
	}{
		{
			name:         "no dates",
			lang:         domain.LangEN,
			expectedKind: BadgeNone,
			expectedText: "",
		},
		{
			name:         "active window, English",
			from:         datePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
			until:        datePtr(time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangEN,
			expectedKind: BadgeActive,
			expectedText: "🔥 D-5 (until 12/7)",
		},
		{
			name:         "active window ending today counts one day left",
			from:         datePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
			until:        datePtr(time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangEN,
			expectedKind: BadgeActive,
			expectedText: "🔥 D-1 (until 12/3)",
		},
		{
			name:         "active window, Korean",
			from:         datePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
			until:        datePtr(time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangKO,
			expectedKind: BadgeActive,
			expectedText: "🔥 D-5 (12/7까지)",
		},
		{
			name:         "future window shows start date and weekday",
			from:         datePtr(time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)), // a Monday
			until:        datePtr(time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangEN,
			expectedKind: BadgeUpcoming,
			expectedText: "📅 Starts 12/8 (Mon)",
		},
		{
			name:         "future window, Dutch weekday",
			from:         datePtr(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)), // a Wednesday
			until:        datePtr(time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangNL,
			expectedKind: BadgeUpcoming,
			expectedText: "📅 Start 12/10 (wo)",
		},
		{
			name:         "only end date still in future is active",
			until:        datePtr(time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangEN,
			expectedKind: BadgeActive,
			expectedText: "🔥 D-3 (until 12/5)",
		},
		{
			name:         "only end date in the past",
			until:        datePtr(time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangEN,
			expectedKind: BadgeNone,
			expectedText: "",
		},
		{
			name:         "window entirely in the past",
			from:         datePtr(time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC)),
			until:        datePtr(time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)),
			lang:         domain.LangEN,
			expectedKind: BadgeNone,
			expectedText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := domain.Recipe{ValidFrom: tt.from, ValidUntil: tt.until}

			badge := Badge(recipe, today, tt.lang)

			assert.Equal(t, tt.expectedKind, badge.Kind)
			assert.Equal(t, tt.expectedText, badge.Text)
		})
	}
}
