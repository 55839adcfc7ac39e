package testutil

import (
	"context"

	"what2cook/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTranslationCache is a mock for repository.TranslationCache
type MockTranslationCache struct {
	mock.Mock
}

func (m *MockTranslationCache) Get(cacheKey string) (string, error) {
	args := m.Called(cacheKey)
	return args.String(0), args.Error(1)
}

func (m *MockTranslationCache) Set(cacheKey string, lang domain.Language, sourceText, translated string) error {
	args := m.Called(cacheKey, lang, sourceText, translated)
	return args.Error(0)
}

// MockChatPrefs is a mock for repository.ChatPrefs
type MockChatPrefs struct {
	mock.Mock
}

func (m *MockChatPrefs) GetLanguage(chatID int64) (domain.Language, error) {
	args := m.Called(chatID)
	return args.Get(0).(domain.Language), args.Error(1)
}

func (m *MockChatPrefs) SetLanguage(chatID int64, lang domain.Language) error {
	args := m.Called(chatID, lang)
	return args.Error(0)
}

// MockProvider is a mock for translate.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Translate(ctx context.Context, texts []string, target domain.Language) ([]string, error) {
	args := m.Called(ctx, texts, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
