package repository

import "what2cook/internal/domain"

// TranslationCache is the persistent tier of the translation cache.
// Entries never expire; a miss is ("", nil).
type TranslationCache interface {
	Get(cacheKey string) (string, error)
	Set(cacheKey string, lang domain.Language, sourceText, translated string) error
}

// ChatPrefs stores each chat's display-language preference.
// GetLanguage returns ("", nil) when the chat has no saved preference.
type ChatPrefs interface {
	GetLanguage(chatID int64) (domain.Language, error)
	SetLanguage(chatID int64, lang domain.Language) error
}
