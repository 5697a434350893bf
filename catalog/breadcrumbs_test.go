package catalog

import (
	"reflect"
	"testing"

	"github.com/sarelalush/Orel-site/models"
)

func TestBreadcrumbsDepths(t *testing.T) {
	root, mid, leaf, _ := testTree()

	tests := []struct {
		name     string
		category *models.Category
		want     []Crumb
	}{
		{
			"nil category", nil, nil,
		},
		{
			"root only", root,
			[]Crumb{
				{Label: "Recovery Gear", Href: "/catalog?category=recovery-gear"},
			},
		},
		{
			"one ancestor", mid,
			[]Crumb{
				{Label: "Recovery Gear", Href: "/catalog?category=recovery-gear"},
				{Label: "Winches", Href: "/catalog?category=recovery-gear&type=winches"},
			},
		},
		{
			"two ancestors", leaf,
			[]Crumb{
				{Label: "Recovery Gear", Href: "/catalog?category=recovery-gear"},
				{Label: "Winches", Href: "/catalog?category=recovery-gear&type=winches"},
				{Label: "Electric Winches", Href: "/catalog?category=recovery-gear&type=winches&subtype=electric-winches"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Breadcrumbs(tt.category)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestBreadcrumbsHrefAccumulation(t *testing.T) {
	_, _, leaf, _ := testTree()

	crumbs := Breadcrumbs(leaf)
	if len(crumbs) != 3 {
		t.Fatalf("got %d crumbs", len(crumbs))
	}
	// every deeper href must contain the previous one as a prefix
	for i := 1; i < len(crumbs); i++ {
		prev, cur := crumbs[i-1].Href, crumbs[i].Href
		if len(cur) <= len(prev) || cur[:len(prev)] != prev {
			t.Errorf("crumb %d href %q does not extend %q", i, cur, prev)
		}
	}
}

func TestProductBreadcrumbs(t *testing.T) {
	_, mid, _, _ := testTree()
	p := &models.Product{ID: 42, Name: "Hitch Shackle", Category: mid}

	crumbs := ProductBreadcrumbs(p)
	if len(crumbs) != 3 {
		t.Fatalf("got %d crumbs", len(crumbs))
	}
	last := crumbs[len(crumbs)-1]
	if last.Label != "Hitch Shackle" || last.Href != "/product/42" {
		t.Errorf("product crumb = %+v", last)
	}

	if got := ProductBreadcrumbs(nil); got != nil {
		t.Errorf("nil product: got %+v", got)
	}
}

func TestProductBreadcrumbsWithoutCategory(t *testing.T) {
	p := &models.Product{ID: 7, Name: "Orphan Item"}
	crumbs := ProductBreadcrumbs(p)
	if len(crumbs) != 1 {
		t.Fatalf("got %d crumbs, want just the product entry", len(crumbs))
	}
}
