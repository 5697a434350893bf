package catalog

import (
	"testing"

	"github.com/sarelalush/Orel-site/models"
)

func ptrUint(v uint) *uint { return &v }

func testTree() (root, mid, leaf, otherLeaf *models.Category) {
	root = &models.Category{ID: 1, Name: "Recovery Gear", Slug: "recovery-gear"}
	mid = &models.Category{ID: 2, Name: "Winches", Slug: "winches", ParentID: ptrUint(1), Parent: root}
	leaf = &models.Category{ID: 3, Name: "Electric Winches", Slug: "electric-winches", ParentID: ptrUint(2), Parent: mid}
	otherLeaf = &models.Category{ID: 4, Name: "Winch Accessories", Slug: "winch-accessories", ParentID: ptrUint(2), Parent: mid}
	return
}

func testProducts() []models.Product {
	root, mid, leaf, otherLeaf := testTree()
	sale := 90.0
	return []models.Product{
		{ID: 1, Name: "Alpha Winch", Description: "sealed electric winch", Price: 1890, Category: leaf},
		{ID: 2, Name: "Snatch Block", Description: "pulley for winching", Price: 120, Category: otherLeaf},
		{ID: 3, Name: "Winch Cover", Description: "weather cover", Price: 45, Category: otherLeaf},
		{ID: 4, Name: "Hitch Shackle", Description: "receiver shackle", Price: 110, SalePrice: &sale, Category: mid},
		{ID: 5, Name: "Camp Table", Description: "folding table", Price: 220, Category: root},
		{ID: 6, Name: "Orphan Item", Description: "no category", Price: 10},
	}
}

func ids(products []models.Product) []uint {
	out := make([]uint, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []uint, b ...uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterCategoryLevels(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name string
		q    Query
		want []uint
	}{
		{"no filter returns everything", Query{}, []uint{1, 2, 3, 4, 5, 6}},
		{"subtype matches leaf slug only", Query{Subtype: "winch-accessories"}, []uint{2, 3}},
		{"type matches slug or parent", Query{Type: "winches"}, []uint{1, 2, 3, 4}},
		{"root matches three levels", Query{Category: "recovery-gear"}, []uint{1, 2, 3, 4, 5}},
		{"subtype wins over broader keys", Query{Category: "recovery-gear", Type: "winches", Subtype: "electric-winches"}, []uint{1}},
		{"unknown slug matches nothing", Query{Subtype: "tents"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterAndSort(products, tt.q))
			if !equalIDs(got, tt.want...) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSearchIsANDedWithCategory(t *testing.T) {
	products := testProducts()

	got := ids(FilterAndSort(products, Query{Type: "winches", Search: "cover"}))
	if !equalIDs(got, 3) {
		t.Fatalf("got %v, want [3]", got)
	}

	// search alone hits name and description, case-insensitive
	got = ids(FilterAndSort(products, Query{Search: "WINCH"}))
	if !equalIDs(got, 1, 2, 3) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestSortByEffectivePrice(t *testing.T) {
	products := testProducts()

	got := ids(FilterAndSort(products, Query{Sort: SortPriceAsc}))
	// Product 4 sorts by its sale price (90), not list price (110).
	if !equalIDs(got, 6, 3, 4, 2, 5, 1) {
		t.Fatalf("price-asc order = %v", got)
	}

	got = ids(FilterAndSort(products, Query{Sort: SortPriceDesc}))
	if !equalIDs(got, 1, 5, 2, 4, 3, 6) {
		t.Fatalf("price-desc order = %v", got)
	}
}

func TestSortByNameRoundTrip(t *testing.T) {
	products := testProducts()

	asc := FilterAndSort(products, Query{Sort: SortNameAsc})
	desc := FilterAndSort(products, Query{Sort: SortNameDesc})

	if len(asc) != len(desc) {
		t.Fatalf("length mismatch: %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("name-desc is not the reverse of name-asc: %v vs %v", ids(asc), ids(desc))
		}
	}
	if asc[0].Name != "Alpha Winch" {
		t.Errorf("name-asc starts with %q", asc[0].Name)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	before := ids(products)

	FilterAndSort(products, Query{Sort: SortPriceDesc, Search: "winch"})

	if !equalIDs(ids(products), before...) {
		t.Fatal("input slice was reordered")
	}
}

func TestUnknownSortKeyKeepsOrder(t *testing.T) {
	products := testProducts()
	got := ids(FilterAndSort(products, Query{Sort: "newest"}))
	if !equalIDs(got, 1, 2, 3, 4, 5, 6) {
		t.Fatalf("got %v", got)
	}
}
