package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"what2cook/internal/domain"

	"go.uber.org/zap"
)

type translateRequest struct {
	TargetLang string   `json:"targetLang"`
	SourceLang string   `json:"sourceLang"`
	Texts      []string `json:"texts"`
}

type translateResponse struct {
	Translations []string `json:"translations"`
	Error        string   `json:"error,omitempty"`
}

// handleTranslate proxies one batch to the translation provider. It is
// deliberately stateless: callers own their caching, this endpoint only
// validates, normalizes, and forwards.
func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, translateResponse{
			Error:        "invalid JSON body",
			Translations: []string{},
		})
		return
	}

	if !domain.ValidLanguage(req.TargetLang) {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "targetLang must be ko|en|nl",
		})
		return
	}
	target := domain.Language(req.TargetLang)

	texts := make([]string, len(req.Texts))
	for i, t := range req.Texts {
		texts[i] = strings.TrimSpace(t)
	}
	if len(texts) == 0 {
		h.writeJSON(w, http.StatusOK, translateResponse{Translations: []string{}})
		return
	}

	// Empty entries are translated as empty; only the rest go upstream,
	// and the response keeps positional alignment.
	var nonEmpty []string
	for _, t := range texts {
		if t != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}

	translations := make([]string, len(texts))
	if len(nonEmpty) > 0 {
		translated, err := h.provider.Translate(r.Context(), nonEmpty, target)
		if err != nil {
			h.logger.Warn("translate endpoint failed",
				zap.String("target", req.TargetLang),
				zap.Int("texts", len(nonEmpty)),
				zap.Error(err),
			)
			h.writeJSON(w, http.StatusInternalServerError, translateResponse{
				Error:        err.Error(),
				Translations: []string{},
			})
			return
		}
		i := 0
		for idx, t := range texts {
			if t != "" {
				translations[idx] = translated[i]
				i++
			}
		}
	}

	h.writeJSON(w, http.StatusOK, translateResponse{Translations: translations})
}
