// Package dataload reads the static JSON snapshots produced by the
// scraping pipeline. It is the only package that sees the raw file
// shapes; everything downstream works with clean domain types.
package dataload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"what2cook/internal/domain"

	"go.uber.org/zap"
)

// Snapshot holds one consistent view of all data files.
type Snapshot struct {
	CurrentRecipes []domain.Recipe
	NextRecipes    []domain.Recipe
	CurrentSales   []domain.SaleProduct
	NextSales      []domain.SaleProduct
	Affiliate      []domain.AffiliateProduct
}

// Loader reads snapshots from a data directory and keeps the latest
// one for concurrent readers. Missing files are normal (the pipeline
// writes them on its own schedule) and never fail a reload.
type Loader struct {
	dir    string
	logger *zap.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// NewLoader creates a loader rooted at dir. Call Reload before the
// first Snapshot.
func NewLoader(dir string, logger *zap.Logger) *Loader {
	return &Loader{dir: dir, logger: logger, snap: &Snapshot{}}
}

// Snapshot returns the most recently loaded snapshot. Never nil.
func (l *Loader) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

// Reload reads all data files and swaps the snapshot in one step.
func (l *Loader) Reload() {
	snap := &Snapshot{
		CurrentRecipes: l.loadRecipes("current_recipes.json", "weekly_recipes.json"),
		NextRecipes:    l.loadRecipes("next_recipes.json"),
		CurrentSales:   l.loadSales("current_sales.json", "weekly_sales.json"),
		NextSales:      l.loadSales("next_sales.json"),
		Affiliate:      l.loadAffiliate("affiliate_products.json"),
	}

	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()

	l.logger.Info("data snapshot loaded",
		zap.Int("current_recipes", len(snap.CurrentRecipes)),
		zap.Int("next_recipes", len(snap.NextRecipes)),
		zap.Int("current_sales", len(snap.CurrentSales)),
		zap.Int("next_sales", len(snap.NextSales)),
		zap.Int("affiliate_products", len(snap.Affiliate)),
	)
}

// read returns the first existing file among names, in order.
func (l *Loader) read(names ...string) []byte {
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(l.dir, name))
		if err == nil {
			return data
		}
		if !os.IsNotExist(err) {
			l.logger.Warn("failed to read data file",
				zap.String("file", name),
				zap.Error(err),
			)
		}
	}
	l.logger.Info("data file absent", zap.Strings("tried", names))
	return nil
}

// decodeList accepts both a bare JSON array and the legacy
// {"products": [...]} wrapper.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []T
		err := json.Unmarshal(trimmed, &out)
		return out, err
	}
	var wrapper struct {
		Products []T `json:"products"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Products, nil
}

type rawProduct struct {
	Store        string `json:"store"`
	Supermarket  string `json:"supermarket"`
	ProductName  string `json:"product_name"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	PriceInfo    string `json:"price_info"`
	Discount     string `json:"discount"`
	DiscountInfo string `json:"discount_info"`
	ValidFrom    string `json:"valid_from"`
	StartDate    string `json:"start_date"`
	ValidUntil   string `json:"valid_until"`
	EndDate      string `json:"end_date"`
}

func (l *Loader) loadSales(names ...string) []domain.SaleProduct {
	data := l.read(names...)
	if data == nil {
		return nil
	}
	raws, err := decodeList[rawProduct](data)
	if err != nil {
		l.logger.Warn("malformed sales file",
			zap.Strings("tried", names),
			zap.Error(err),
		)
		return nil
	}

	products := make([]domain.SaleProduct, 0, len(raws))
	for _, r := range raws {
		products = append(products, domain.SaleProduct{
			Store:       firstOf(r.Store, r.Supermarket),
			ProductName: firstOf(r.ProductName, r.Name),
			Price:       firstOf(r.Price, r.PriceInfo),
			Discount:    firstOf(r.Discount, r.DiscountInfo),
			ValidFrom:   l.parseDate(firstOf(r.ValidFrom, r.StartDate)),
			ValidUntil:  l.parseDate(firstOf(r.ValidUntil, r.EndDate)),
		})
	}
	return products
}

type rawRecipe struct {
	ID              string   `json:"id"`
	Store           string   `json:"store"`
	MenuName        string   `json:"menu_name"`
	MenuNameEN      string   `json:"menu_name_en"`
	MenuNameNL      string   `json:"menu_name_nl"`
	Description     string   `json:"description"`
	DescriptionEN   string   `json:"description_en"`
	DescriptionNL   string   `json:"description_nl"`
	MainIngredients []string `json:"main_ingredients"`
	ShoppingList    []string `json:"shopping_list"`
	CostSavingTip   string   `json:"cost_saving_tip"`
	CostSavingTipEN string   `json:"cost_saving_tip_en"`
	CostSavingTipNL string   `json:"cost_saving_tip_nl"`
	ValidFrom       string   `json:"valid_from"`
	ValidUntil      string   `json:"valid_until"`
	Tags            struct {
		IsSpicy        bool   `json:"is_spicy"`
		IsVegetarian   bool   `json:"is_vegetarian"`
		IsKidFriendly  bool   `json:"is_kid_friendly"`
		IsPartyFood    bool   `json:"is_party_food"`
		IsAlcoholSnack bool   `json:"is_alcohol_snack"`
		CookingTime    string `json:"cooking_time"`
	} `json:"tags"`
}

func (l *Loader) loadRecipes(names ...string) []domain.Recipe {
	data := l.read(names...)
	if data == nil {
		return nil
	}
	raws, err := decodeList[rawRecipe](data)
	if err != nil {
		l.logger.Warn("malformed recipes file",
			zap.Strings("tried", names),
			zap.Error(err),
		)
		return nil
	}

	recipes := make([]domain.Recipe, 0, len(raws))
	for _, r := range raws {
		recipes = append(recipes, domain.Recipe{
			ID:              r.ID,
			Store:           r.Store,
			MenuName:        r.MenuName,
			MenuNameEN:      r.MenuNameEN,
			MenuNameNL:      r.MenuNameNL,
			Description:     r.Description,
			DescriptionEN:   r.DescriptionEN,
			DescriptionNL:   r.DescriptionNL,
			MainIngredients: r.MainIngredients,
			ShoppingList:    r.ShoppingList,
			CostSavingTip:   r.CostSavingTip,
			CostSavingTipEN: r.CostSavingTipEN,
			CostSavingTipNL: r.CostSavingTipNL,
			ValidFrom:       l.parseDate(r.ValidFrom),
			ValidUntil:      l.parseDate(r.ValidUntil),
			Tags: domain.RecipeTags{
				IsSpicy:        r.Tags.IsSpicy,
				IsVegetarian:   r.Tags.IsVegetarian,
				IsKidFriendly:  r.Tags.IsKidFriendly,
				IsPartyFood:    r.Tags.IsPartyFood,
				IsAlcoholSnack: r.Tags.IsAlcoholSnack,
				CookingTime:    r.Tags.CookingTime,
			},
		})
	}
	return recipes
}

type rawPlatformLink struct {
	URL      string `json:"url"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	Badge    string `json:"badge"`
	Benefit  string `json:"benefit"`
}

type rawAffiliate struct {
	ID          string   `json:"id"`
	Platform    string   `json:"platform"`
	Name        string   `json:"name"`
	NameEN      string   `json:"name_en"`
	NameNL      string   `json:"name_nl"`
	Description string   `json:"description"`
	Benefit     string   `json:"benefit"`
	Image       string   `json:"image"`
	URL         string   `json:"url"`
	Price       string   `json:"price"`
	Currency    string   `json:"currency"`
	Badge       string   `json:"badge"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`

	// Legacy per-platform sub-records.
	Platforms      map[string]rawPlatformLink `json:"platforms"`
	AffiliateLinks map[string]rawPlatformLink `json:"affiliate_links"`
}

func (l *Loader) loadAffiliate(name string) []domain.AffiliateProduct {
	data := l.read(name)
	if data == nil {
		return nil
	}
	raws, err := decodeList[rawAffiliate](data)
	if err != nil {
		l.logger.Warn("malformed affiliate file",
			zap.String("file", name),
			zap.Error(err),
		)
		return nil
	}

	var products []domain.AffiliateProduct
	for _, r := range raws {
		products = append(products, flattenAffiliate(r)...)
	}
	return products
}

// flattenAffiliate turns one raw record into one product per platform.
// Modern records already carry a single platform; legacy records hold a
// platforms (or older affiliate_links) map.
func flattenAffiliate(r rawAffiliate) []domain.AffiliateProduct {
	base := domain.AffiliateProduct{
		ID:          r.ID,
		Platform:    r.Platform,
		Name:        r.Name,
		NameEN:      r.NameEN,
		NameNL:      r.NameNL,
		Description: r.Description,
		Benefit:     r.Benefit,
		Image:       r.Image,
		URL:         r.URL,
		Price:       r.Price,
		Currency:    r.Currency,
		Badge:       r.Badge,
		Category:    r.Category,
		Tags:        r.Tags,
	}

	links := r.Platforms
	if len(links) == 0 {
		links = r.AffiliateLinks
	}
	if len(links) == 0 {
		if base.Platform == "" {
			return nil
		}
		return []domain.AffiliateProduct{base}
	}

	var out []domain.AffiliateProduct
	for _, platform := range []string{domain.PlatformAmazon, domain.PlatformBol} {
		link, ok := links[platform]
		if !ok {
			continue
		}
		p := base
		p.ID = fmt.Sprintf("%s_%s", r.ID, platform)
		p.Platform = platform
		p.URL = link.URL
		p.Price = link.Price
		p.Currency = link.Currency
		if link.Badge != "" {
			p.Badge = link.Badge
		}
		if link.Benefit != "" {
			p.Benefit = link.Benefit
		}
		out = append(out, p)
	}
	return out
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate returns nil for empty or unparseable values; only the
// latter is worth a warning.
func (l *Loader) parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	l.logger.Warn("unparseable date in data file", zap.String("value", value))
	return nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
