package catalog

import (
	"context"

	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

// Menu groups the catalog for terminal navigation: uncategorized items first,
// then each category with its direct items and subcategory buckets. Empty
// subcategories still appear so operators can see where to file new items.
func (s *service) Menu(ctx context.Context) (*MenuDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	subs, err := s.repo.ListSubcategories(ctx, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list subcategories")
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}

	menu := &MenuDTO{
		Uncategorized: []ItemDTO{},
		Categories:    make([]MenuCategoryDTO, 0, len(categories)),
	}

	catIndex := make(map[uint]int, len(categories))
	for _, c := range categories {
		catIndex[c.ID] = len(menu.Categories)
		menu.Categories = append(menu.Categories, MenuCategoryDTO{
			ID:            c.ID,
			Name:          c.Name,
			Items:         []ItemDTO{},
			Subcategories: []MenuSubcategoryDTO{},
		})
	}

	subIndex := make(map[uint][2]int, len(subs))
	for _, sub := range subs {
		ci, ok := catIndex[sub.CategoryID]
		if !ok {
			continue
		}
		bucket := &menu.Categories[ci]
		subIndex[sub.ID] = [2]int{ci, len(bucket.Subcategories)}
		bucket.Subcategories = append(bucket.Subcategories, MenuSubcategoryDTO{
			ID:    sub.ID,
			Name:  sub.Name,
			Items: []ItemDTO{},
		})
	}

	for i := range items {
		dto := NewItemDTO(&items[i])
		switch {
		case items[i].SubcategoryID != nil:
			if pos, ok := subIndex[*items[i].SubcategoryID]; ok {
				sub := &menu.Categories[pos[0]].Subcategories[pos[1]]
				sub.Items = append(sub.Items, dto)
				continue
			}
			menu.Uncategorized = append(menu.Uncategorized, dto)
		case items[i].CategoryID != nil:
			if ci, ok := catIndex[*items[i].CategoryID]; ok {
				menu.Categories[ci].Items = append(menu.Categories[ci].Items, dto)
				continue
			}
			menu.Uncategorized = append(menu.Uncategorized, dto)
		default:
			menu.Uncategorized = append(menu.Uncategorized, dto)
		}
	}

	return menu, nil
}
