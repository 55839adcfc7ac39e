// Package handler exposes the HTTP API: recipe and deal views over the
// loaded snapshots plus the translation proxy endpoint.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"what2cook/internal/dataload"
	"what2cook/internal/translate"
	"what2cook/internal/weekplan"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler wires the HTTP routes to the data snapshot and the
// translation services.
type Handler struct {
	loader     *dataload.Loader
	resolver   *weekplan.Resolver
	translator *translate.Service
	provider   translate.Provider
	logger     *zap.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// New creates the handler set.
func New(loader *dataload.Loader, resolver *weekplan.Resolver, translator *translate.Service, provider translate.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		loader:     loader,
		resolver:   resolver,
		translator: translator,
		provider:   provider,
		logger:     logger,
		now:        time.Now,
	}
}

// Routes builds the chi router for the API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/translate", h.handleTranslate)
		r.Get("/recipes", h.handleRecipes)
		r.Get("/deals", h.handleDeals)
		r.Get("/products", h.handleProducts)
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
