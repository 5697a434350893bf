package catalog

import (
	"fmt"

	"github.com/sarelalush/Orel-site/models"
)

// Crumb is one breadcrumb entry.
type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Breadcrumbs walks a category's parent chain (up to grandparent) and returns
// the ordered trail [root?, type?, subtype?]. Each deeper entry's href repeats
// every shallower query key already resolved, so that navigating one level up
// from any crumb lands on a correctly filtered catalog page. Absent ancestors
// are omitted, never replaced with placeholders.
func Breadcrumbs(category *models.Category) []Crumb {
	if category == nil {
		return nil
	}

	switch {
	case category.Parent != nil && category.Parent.Parent != nil:
		root := category.Parent.Parent
		parent := category.Parent
		return []Crumb{
			{
				Label: root.Name,
				Href:  fmt.Sprintf("/catalog?category=%s", root.Slug),
			},
			{
				Label: parent.Name,
				Href:  fmt.Sprintf("/catalog?category=%s&type=%s", root.Slug, parent.Slug),
			},
			{
				Label: category.Name,
				Href:  fmt.Sprintf("/catalog?category=%s&type=%s&subtype=%s", root.Slug, parent.Slug, category.Slug),
			},
		}
	case category.Parent != nil:
		parent := category.Parent
		return []Crumb{
			{
				Label: parent.Name,
				Href:  fmt.Sprintf("/catalog?category=%s", parent.Slug),
			},
			{
				Label: category.Name,
				Href:  fmt.Sprintf("/catalog?category=%s&type=%s", parent.Slug, category.Slug),
			},
		}
	default:
		return []Crumb{
			{
				Label: category.Name,
				Href:  fmt.Sprintf("/catalog?category=%s", category.Slug),
			},
		}
	}
}

// ProductBreadcrumbs appends the product's own page entry to its category
// trail.
func ProductBreadcrumbs(p *models.Product) []Crumb {
	if p == nil {
		return nil
	}
	crumbs := Breadcrumbs(p.Category)
	return append(crumbs, Crumb{
		Label: p.Name,
		Href:  fmt.Sprintf("/product/%d", p.ID),
	})
}
