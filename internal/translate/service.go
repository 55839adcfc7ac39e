// Package translate fetches, caches, and merges machine translations
// for user-facing strings, falling back to the source text on any
// failure.
package translate

import (
	"context"
	"sync"

	"what2cook/internal/domain"
	"what2cook/internal/repository"

	"go.uber.org/zap"
)

// maxBatchSize caps the number of texts per outbound provider request.
const maxBatchSize = 20

// Service is the two-tier translation cache client: an in-memory map in
// front of the persistent store, with the provider behind both.
type Service struct {
	cache    repository.TranslationCache
	provider Provider
	logger   *zap.Logger

	mu  sync.RWMutex
	mem map[string]string
}

// NewService creates a translation service.
func NewService(cache repository.TranslationCache, provider Provider, logger *zap.Logger) *Service {
	return &Service{
		cache:    cache,
		provider: provider,
		logger:   logger,
		mem:      make(map[string]string),
	}
}

// Translate returns translations for texts, aligned index-for-index
// with the input. Empty inputs stay empty and never reach the provider.
// Failures degrade to the source text for the affected chunk; Translate
// never fails as a whole.
func (s *Service) Translate(ctx context.Context, texts []string, target domain.Language) []string {
	results := make([]string, len(texts))

	var missing []int
	for i, text := range texts {
		if text == "" {
			continue
		}
		if cached, ok := s.lookup(target, text); ok {
			results[i] = cached
			continue
		}
		missing = append(missing, i)
	}

	for start := 0; start < len(missing); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(missing) {
			end = len(missing)
		}
		s.translateChunk(ctx, texts, results, missing[start:end], target)
	}

	return results
}

// lookup checks the in-memory tier, then the persistent one. A
// persistent-store error counts as a miss.
func (s *Service) lookup(target domain.Language, text string) (string, bool) {
	key := CacheKey(target, text)

	s.mu.RLock()
	cached, ok := s.mem[key]
	s.mu.RUnlock()
	if ok {
		return cached, true
	}

	stored, err := s.cache.Get(key)
	if err != nil {
		s.logger.Warn("translation cache read failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false
	}
	if stored == "" {
		return "", false
	}

	s.mu.Lock()
	s.mem[key] = stored
	s.mu.Unlock()
	return stored, true
}

// translateChunk fills results for one chunk of missing indices. On any
// provider failure the chunk's slots get their source text back.
func (s *Service) translateChunk(ctx context.Context, texts, results []string, indices []int, target domain.Language) {
	batch := make([]string, len(indices))
	for i, idx := range indices {
		batch[i] = texts[idx]
	}

	translated, err := s.provider.Translate(ctx, batch, target)
	if err != nil || len(translated) != len(batch) {
		s.logger.Warn("translation batch failed, falling back to source text",
			zap.Int("batch_size", len(batch)),
			zap.String("target", string(target)),
			zap.Error(err),
		)
		for _, idx := range indices {
			results[idx] = texts[idx]
		}
		return
	}

	for i, idx := range indices {
		results[idx] = translated[i]
		s.store(target, texts[idx], translated[i])
	}
}

// store writes a fresh translation to both cache tiers.
func (s *Service) store(target domain.Language, text, translated string) {
	key := CacheKey(target, text)

	s.mu.Lock()
	s.mem[key] = translated
	s.mu.Unlock()

	if err := s.cache.Set(key, target, text, translated); err != nil {
		s.logger.Warn("translation cache write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
