package service

import (
	"sort"
	"strings"

	"go-pms-backend/internal/apperr"
	"go-pms-backend/internal/repository"
)

// CatalogProduct is a cleaned search/autocomplete row.
type CatalogProduct struct {
	ProductID         uint   `json:"product_id"`
	Name              string `json:"name"`
	InventoryType     string `json:"inventory_type"`
	InventoryUnitType string `json:"inventory_unit_type"`
}

type ProductService interface {
	Search(term, forType string, limit int) ([]CatalogProduct, error)
	UnitTypes() ([]string, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo}
}

var defaultUnitTypes = []string{
	"KG", "GM", "MG", "LTR", "ML", "PCS", "DOZEN", "BOX", "BAG", "MTR", "ROLL", "SET", "PAIR",
}

func (s *productService) Search(term, forType string, limit int) ([]CatalogProduct, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}

	rows, err := s.repo.Search(repository.ProductSearch{
		Term:  term,
		For:   strings.TrimSpace(forType),
		Limit: limit,
	})
	if err != nil {
		return nil, apperr.Persistence("search products", err)
	}

	out := make([]CatalogProduct, 0, len(rows))
	for _, p := range rows {
		name := cleanName(p.Name)
		if name == "" {
			continue
		}
		out = append(out, CatalogProduct{
			ProductID:         p.ProductID,
			Name:              name,
			InventoryType:     orDefault(p.InventoryType, "SINGLE"),
			InventoryUnitType: orDefault(p.InventoryUnitType, "WEIGHT"),
		})
	}
	return out, nil
}

// UnitTypes merges the standard unit list with whatever BOM items already use,
// so legacy data keeps showing up in the picker.
func (s *productService) UnitTypes() ([]string, error) {
	used, err := s.repo.UnitTypes()
	if err != nil {
		return nil, apperr.Persistence("list unit types", err)
	}

	out := append([]string(nil), defaultUnitTypes...)
	seen := make(map[string]bool, len(out))
	for _, u := range out {
		seen[u] = true
	}
	var extras []string
	for _, u := range used {
		u = strings.ToUpper(strings.TrimSpace(u))
		if u != "" && !seen[u] {
			seen[u] = true
			extras = append(extras, u)
		}
	}
	sort.Strings(extras)
	return append(out, extras...), nil
}

// cleanName strips characters that break the consuming UI's autocomplete.
func cleanName(name string) string {
	name = strings.TrimSpace(name)
	return strings.NewReplacer(`"`, "", `\`, "", "\n", "", "\r", "", "\t", "").Replace(name)
}

func orDefault(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
