package domain

// Language is a display language supported by the site.
type Language string

const (
	LangKO Language = "ko"
	LangEN Language = "en"
	LangNL Language = "nl"
)

// ParseLanguage maps a raw language tag to a supported Language.
// Unknown values fall back to English.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LangKO, LangEN, LangNL:
		return Language(s)
	}
	return LangEN
}

// ValidLanguage reports whether s is one of the supported language tags.
func ValidLanguage(s string) bool {
	switch Language(s) {
	case LangKO, LangEN, LangNL:
		return true
	}
	return false
}

// Weekday names indexed by time.Weekday (Sunday first).
var weekdayNames = map[Language][7]string{
	LangKO: {"일", "월", "화", "수", "목", "금", "토"},
	LangEN: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	LangNL: {"zo", "ma", "di", "wo", "do", "vr", "za"},
}

// WeekdayName returns the localized short weekday name. weekday follows
// time.Weekday numbering (Sunday = 0).
func (l Language) WeekdayName(weekday int) string {
	names, ok := weekdayNames[l]
	if !ok {
		names = weekdayNames[LangEN]
	}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}
