package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
)

var (
	ErrItemNotFound     = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("menu category not found")
)

// CatalogRepository defines read access to the menu catalog.
// Every method returns copies; catalog stock is never mutated by callers.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]string, error)
	Items(ctx context.Context, category string) ([]models.MenuItem, error)
	All(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

// InMemoryCatalogRepository implements CatalogRepository over a fixed list of
// categories held in memory
type InMemoryCatalogRepository struct {
	categories []models.Category
}

// NewInMemoryCatalogRepository creates a catalog seeded with the café's menu
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return NewCatalogRepository(DefaultMenu())
}

// NewCatalogRepository creates a catalog over the given categories, keeping
// their order
func NewCatalogRepository(categories []models.Category) *InMemoryCatalogRepository {
	cats := make([]models.Category, len(categories))
	for i, c := range categories {
		cats[i] = models.Category{
			Name:  c.Name,
			Items: append([]models.MenuItem(nil), c.Items...),
		}
	}
	return &InMemoryCatalogRepository{categories: cats}
}

// Categories returns category names in catalog order
func (r *InMemoryCatalogRepository) Categories(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		names = append(names, c.Name)
	}
	return names, nil
}

// Items returns the items of one category in their listed order
func (r *InMemoryCatalogRepository) Items(ctx context.Context, category string) ([]models.MenuItem, error) {
	for _, c := range r.categories {
		if c.Name == category {
			return append([]models.MenuItem{}, c.Items...), nil
		}
	}
	return nil, ErrCategoryNotFound
}

// All returns every item, categories concatenated in catalog order
func (r *InMemoryCatalogRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	for _, c := range r.categories {
		items = append(items, c.Items...)
	}
	return items, nil
}

// FindByID returns the first item with the given ID across all categories
func (r *InMemoryCatalogRepository) FindByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	for _, c := range r.categories {
		for _, item := range c.Items {
			if item.ID == id {
				found := item
				return &found, nil
			}
		}
	}
	return nil, ErrItemNotFound
}
