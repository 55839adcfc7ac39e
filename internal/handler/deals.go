package handler

import (
	"net/http"

	"what2cook/internal/catalog"
	"what2cook/internal/domain"
)

type productDTO struct {
	Store       string `json:"store"`
	ProductName string `json:"product_name"`
	Price       string `json:"price,omitempty"`
	Discount    string `json:"discount,omitempty"`
	ValidFrom   string `json:"valid_from,omitempty"`
	ValidUntil  string `json:"valid_until,omitempty"`
}

type dealBucketsDTO struct {
	Main   []productDTO `json:"main"`
	Sub    []productDTO `json:"sub"`
	Fruits []productDTO `json:"fruits"`
	Total  int          `json:"total"`
}

type dealsResponse struct {
	Current dealBucketsDTO `json:"current"`
	Next    dealBucketsDTO `json:"next"`
}

// handleDeals serves the supermarket deals view: both week tabs, store
// and search filters applied before classification.
func (h *Handler) handleDeals(w http.ResponseWriter, r *http.Request) {
	snap := h.loader.Snapshot()
	state := filterStateFromQuery(r)

	resp := dealsResponse{
		Current: dealBuckets(state.ApplyProducts(snap.CurrentSales)),
		Next:    dealBuckets(state.ApplyProducts(snap.NextSales)),
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func dealBuckets(products []domain.SaleProduct) dealBucketsDTO {
	buckets := catalog.Classify(products)
	return dealBucketsDTO{
		Main:   productDTOs(buckets.Main),
		Sub:    productDTOs(buckets.Sub),
		Fruits: productDTOs(buckets.Fruits),
		Total:  buckets.Total(),
	}
}

func productDTOs(products []domain.SaleProduct) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		dto := productDTO{
			Store:       p.Store,
			ProductName: p.ProductName,
			Price:       p.Price,
			Discount:    p.Discount,
		}
		if p.ValidFrom != nil {
			dto.ValidFrom = p.ValidFrom.Format("2006-01-02")
		}
		if p.ValidUntil != nil {
			dto.ValidUntil = p.ValidUntil.Format("2006-01-02")
		}
		out = append(out, dto)
	}
	return out
}
