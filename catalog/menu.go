package catalog

import "github.com/sarelalush/Orel-site/models"

// MenuNode is one entry in the navigational menu tree.
type MenuNode struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Href     string     `json:"href"`
	Children []MenuNode `json:"children,omitempty"`
}

// Menu groups a flat category list into the three-level navigation tree.
// Rows whose parent is missing from the list are treated as roots rather
// than dropped.
func Menu(categories []models.Category) []MenuNode {
	byID := make(map[uint]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	childrenOf := make(map[uint][]models.Category)
	var roots []models.Category
	for _, c := range categories {
		if c.ParentID != nil {
			if _, ok := byID[*c.ParentID]; ok {
				childrenOf[*c.ParentID] = append(childrenOf[*c.ParentID], c)
				continue
			}
		}
		roots = append(roots, c)
	}

	nodes := make([]MenuNode, 0, len(roots))
	for _, root := range roots {
		node := MenuNode{
			ID:   root.ID,
			Name: root.Name,
			Slug: root.Slug,
			Href: "/catalog?category=" + root.Slug,
		}
		for _, typ := range childrenOf[root.ID] {
			typNode := MenuNode{
				ID:   typ.ID,
				Name: typ.Name,
				Slug: typ.Slug,
				Href: "/catalog?category=" + root.Slug + "&type=" + typ.Slug,
			}
			for _, sub := range childrenOf[typ.ID] {
				typNode.Children = append(typNode.Children, MenuNode{
					ID:   sub.ID,
					Name: sub.Name,
					Slug: sub.Slug,
					Href: "/catalog?category=" + root.Slug + "&type=" + typ.Slug + "&subtype=" + sub.Slug,
				})
			}
			node.Children = append(node.Children, typNode)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
