package postgres

import (
	"testing"

	"what2cook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPrefsRepo_GetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		chatID   int64
		mockRows *sqlmock.Rows
		expected domain.Language
	}{
		{
			name:   "saved preference",
			chatID: 42,
			mockRows: sqlmock.NewRows([]string{"language"}).
				AddRow("nl"),
			expected: domain.LangNL,
		},
		{
			name:     "no preference yet",
			chatID:   7,
			mockRows: sqlmock.NewRows([]string{"language"}),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewPrefsRepo(db)

			mock.ExpectQuery("SELECT language FROM chat_prefs WHERE chat_id = \\$1").
				WithArgs(tt.chatID).
				WillReturnRows(tt.mockRows)

			lang, err := repo.GetLanguage(tt.chatID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, lang)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPrefsRepo_SetLanguage(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPrefsRepo(db)

	mock.ExpectExec("INSERT INTO chat_prefs").
		WithArgs(int64(42), "ko").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetLanguage(42, domain.LangKO)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
