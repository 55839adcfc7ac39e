package handler

import (
	"net/http"
	"strings"

	"what2cook/internal/domain"
)

type affiliateDTO struct {
	ID          string   `json:"id"`
	Platform    string   `json:"platform"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Benefit     string   `json:"benefit,omitempty"`
	Image       string   `json:"image,omitempty"`
	URL         string   `json:"url"`
	Price       string   `json:"price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Cheapest    bool     `json:"cheapest,omitempty"`
}

// handleProducts serves the affiliate product list, optionally filtered
// by category. When the same product is listed on both platforms, the
// cheaper listing is marked.
func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	products := h.loader.Snapshot().Affiliate

	if category := r.URL.Query().Get("category"); category != "" {
		var filtered []domain.AffiliateProduct
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	out := make([]affiliateDTO, 0, len(products))
	for _, p := range products {
		out = append(out, affiliateDTO{
			ID:          p.ID,
			Platform:    p.Platform,
			Name:        p.Name,
			Description: p.Description,
			Benefit:     p.Benefit,
			Image:       p.Image,
			URL:         p.URL,
			Price:       p.Price,
			Currency:    p.Currency,
			Badge:       p.Badge,
			Category:    p.Category,
			Tags:        p.Tags,
		})
	}
	markCheapest(products, out)

	h.writeJSON(w, http.StatusOK, map[string]any{"products": out})
}

// markCheapest compares the amazon and bol listings of flattened legacy
// records that share a base ID.
func markCheapest(products []domain.AffiliateProduct, dtos []affiliateDTO) {
	byBase := make(map[string][]int)
	for i, p := range products {
		base := strings.TrimSuffix(strings.TrimSuffix(p.ID, "_"+domain.PlatformAmazon), "_"+domain.PlatformBol)
		byBase[base] = append(byBase[base], i)
	}

	for _, indices := range byBase {
		if len(indices) != 2 {
			continue
		}
		a, b := indices[0], indices[1]
		switch domain.CheaperPlatform(products[a].Price, products[b].Price) {
		case 1:
			dtos[a].Cheapest = true
		case 2:
			dtos[b].Cheapest = true
		}
	}
}
