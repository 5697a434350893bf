package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sarelalush/Orel-site/models"
)

// Sort keys accepted by FilterAndSort.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// Query carries the catalog navigation state, exactly as it travels in URL
// query parameters.
type Query struct {
	Category string
	Type     string
	Subtype  string
	Search   string
	Sort     string
}

// FilterAndSort returns a filtered, ordered copy of products. The input slice
// is never mutated and the result is deterministic for a given input and
// query.
//
// Category matching is tri-level, first-match-wins by specificity: a subtype
// must match the product's own category slug; a type may match the category
// or its parent; a root category may match any of the three levels. The text
// search is a case-insensitive substring match on name or description, ANDed
// with the category filter.
func FilterAndSort(products []models.Product, q Query) []models.Product {
	out := make([]models.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, p := range products {
		if !matchesCategory(&p, q) {
			continue
		}
		if search != "" {
			name := strings.ToLower(p.Name)
			desc := strings.ToLower(p.Description)
			if !strings.Contains(name, search) && !strings.Contains(desc, search) {
				continue
			}
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out
}

func matchesCategory(p *models.Product, q Query) bool {
	cat := p.Category

	switch {
	case q.Subtype != "":
		return cat != nil && cat.Slug == q.Subtype
	case q.Type != "":
		if cat == nil {
			return false
		}
		if cat.Slug == q.Type {
			return true
		}
		return cat.Parent != nil && cat.Parent.Slug == q.Type
	case q.Category != "":
		if cat == nil {
			return false
		}
		if cat.Slug == q.Category {
			return true
		}
		if cat.Parent != nil && cat.Parent.Slug == q.Category {
			return true
		}
		return cat.Parent != nil && cat.Parent.Parent != nil && cat.Parent.Parent.Slug == q.Category
	default:
		return true
	}
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortNameAsc:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) > 0
		})
	}
}
