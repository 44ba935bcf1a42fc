package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/repository"
)

// PreorderSource supplies a session's pre-order log
type PreorderSource interface {
	Preorders(ctx context.Context, session string) ([]models.PreorderEntry, error)
}

// ItemView is a menu item as displayed, with stock already corrected for the
// session's pre-orders
type ItemView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ImageRef    string  `json:"imageRef"`
	Stock       int     `json:"stock"`
	OutOfStock  bool    `json:"outOfStock"`
	CanAdd      bool    `json:"canAdd"`
}

// Service projects the catalog into display items
type Service struct {
	catalog   repository.CatalogRepository
	preorders PreorderSource
	log       *slog.Logger
}

// NewService creates a menu service
func NewService(catalog repository.CatalogRepository, preorders PreorderSource, log *slog.Logger) *Service {
	return &Service{
		catalog:   catalog,
		preorders: preorders,
		log:       log,
	}
}

// Categories returns the catalog's category names in display order
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.catalog.Categories(ctx)
}

// Render returns the items of category, or of every category when category is
// empty. An unknown category renders no items.
//
// Each pre-order takes one unit from the first rendered item carrying the
// same name, never below zero. The correction is computed per call on copies
// and never reaches the catalog. OutOfStock is judged on the corrected
// stock, so an item whose last units are all pre-ordered renders as
// "Out of Stock" and cannot be added from the menu.
func (s *Service) Render(ctx context.Context, session, category string) ([]ItemView, error) {
	var (
		items []models.MenuItem
		err   error
	)
	if category == "" {
		items, err = s.catalog.All(ctx)
	} else {
		items, err = s.catalog.Items(ctx, category)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			s.log.Debug("unknown menu category", "category", category)
			return []ItemView{}, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	preorders, err := s.preorders.Preorders(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to load pre-orders: %w", err)
	}
	applyPreorders(items, preorders)

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		out := item.Stock <= 0
		views = append(views, ItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Rating:      item.Rating,
			ImageRef:    item.ImageRef,
			Stock:       item.Stock,
			OutOfStock:  out,
			CanAdd:      !out,
		})
	}
	return views, nil
}

// applyPreorders decrements, for each pre-order, the stock of the first item
// whose name matches, flooring at zero. Matching is by name only.
func applyPreorders(items []models.MenuItem, preorders []models.PreorderEntry) {
	for _, p := range preorders {
		for i := range items {
			if items[i].Name == p.Item {
				items[i].Stock = max(0, items[i].Stock-1)
				break
			}
		}
	}
}
