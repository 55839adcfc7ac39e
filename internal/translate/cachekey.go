package translate

import (
	"fmt"

	"what2cook/internal/domain"
)

// djb2 is the hash historically used for translation cache keys; kept
// bit-for-bit so existing cached entries remain addressable.
func djb2(s string) uint32 {
	hash := uint32(5381)
	for _, r := range s {
		hash = ((hash << 5) + hash) ^ uint32(r)
	}
	return hash
}

// CacheKey builds the cache key for one (target language, source text)
// pair.
func CacheKey(lang domain.Language, text string) string {
	return fmt.Sprintf("w2c_tr_%s_%x", lang, djb2(text))
}
