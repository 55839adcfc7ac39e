package postgres

import (
	"database/sql"

	"what2cook/internal/domain"
)

// TranslationRepo implements repository.TranslationCache on Postgres.
type TranslationRepo struct {
	db *sql.DB
}

// NewTranslationRepo creates a new translation cache repository.
func NewTranslationRepo(db *sql.DB) *TranslationRepo {
	return &TranslationRepo{db: db}
}

// Get returns the cached translation for cacheKey, or "" on a miss.
func (r *TranslationRepo) Get(cacheKey string) (string, error) {
	query := `
		SELECT translated
		FROM translations
		WHERE cache_key = $1
	`
	var translated string
	err := r.db.QueryRow(query, cacheKey).Scan(&translated)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return translated, nil
}

// Set stores a translation. Re-translating the same source overwrites
// the previous entry; entries are never aged out.
func (r *TranslationRepo) Set(cacheKey string, lang domain.Language, sourceText, translated string) error {
	query := `
		INSERT INTO translations (cache_key, lang, source_text, translated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cache_key) DO UPDATE SET translated = EXCLUDED.translated
	`
	_, err := r.db.Exec(query, cacheKey, string(lang), sourceText, translated)
	return err
}
