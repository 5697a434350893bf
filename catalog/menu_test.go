package catalog

import (
	"testing"

	"github.com/sarelalush/Orel-site/models"
)

func TestMenuBuildsThreeLevels(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Recovery Gear", Slug: "recovery-gear"},
		{ID: 2, Name: "Winches", Slug: "winches", ParentID: ptrUint(1)},
		{ID: 3, Name: "Electric Winches", Slug: "electric-winches", ParentID: ptrUint(2)},
		{ID: 4, Name: "Camping", Slug: "camping"},
	}

	menu := Menu(categories)
	if len(menu) != 2 {
		t.Fatalf("got %d roots, want 2", len(menu))
	}

	recovery := menu[0]
	if recovery.Slug != "recovery-gear" || len(recovery.Children) != 1 {
		t.Fatalf("unexpected root node: %+v", recovery)
	}
	winches := recovery.Children[0]
	if winches.Href != "/catalog?category=recovery-gear&type=winches" {
		t.Errorf("type href = %q", winches.Href)
	}
	if len(winches.Children) != 1 {
		t.Fatalf("got %d subtypes", len(winches.Children))
	}
	sub := winches.Children[0]
	if sub.Href != "/catalog?category=recovery-gear&type=winches&subtype=electric-winches" {
		t.Errorf("subtype href = %q", sub.Href)
	}

	if menu[1].Slug != "camping" || len(menu[1].Children) != 0 {
		t.Errorf("unexpected second root: %+v", menu[1])
	}
}

func TestMenuOrphanParentBecomesRoot(t *testing.T) {
	categories := []models.Category{
		{ID: 2, Name: "Winches", Slug: "winches", ParentID: ptrUint(99)}, // parent not in list
	}

	menu := Menu(categories)
	if len(menu) != 1 {
		t.Fatalf("got %d roots, want 1", len(menu))
	}
	if menu[0].Href != "/catalog?category=winches" {
		t.Errorf("orphan href = %q", menu[0].Href)
	}
}

func TestMenuEmptyInput(t *testing.T) {
	if menu := Menu(nil); len(menu) != 0 {
		t.Fatalf("got %d nodes for empty input", len(menu))
	}
}
