package postgres

import (
	"database/sql"

	"what2cook/internal/domain"
)

// PrefsRepo implements repository.ChatPrefs on Postgres.
type PrefsRepo struct {
	db *sql.DB
}

// NewPrefsRepo creates a new chat preferences repository.
func NewPrefsRepo(db *sql.DB) *PrefsRepo {
	return &PrefsRepo{db: db}
}

// GetLanguage returns the chat's saved display language, or "" when the
// chat never picked one.
func (r *PrefsRepo) GetLanguage(chatID int64) (domain.Language, error) {
	query := `
		SELECT language
		FROM chat_prefs
		WHERE chat_id = $1
	`
	var lang string
	err := r.db.QueryRow(query, chatID).Scan(&lang)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return domain.Language(lang), nil
}

// SetLanguage saves or replaces the chat's display language.
func (r *PrefsRepo) SetLanguage(chatID int64, lang domain.Language) error {
	query := `
		INSERT INTO chat_prefs (chat_id, language)
		VALUES ($1, $2)
		ON CONFLICT (chat_id) DO UPDATE SET language = EXCLUDED.language, updated_at = NOW()
	`
	_, err := r.db.Exec(query, chatID, string(lang))
	return err
}
