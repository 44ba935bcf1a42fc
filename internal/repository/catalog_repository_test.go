package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
)

func TestInMemoryCatalogRepository_Categories(t *testing.T) {
	repo := NewInMemoryCatalogRepository()

	got, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"breakfast", "lunch", "sandwiches", "beverages"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInMemoryCatalogRepository_AllKeepsOrder(t *testing.T) {
	repo := NewCatalogRepository([]models.Category{
		{Name: "b", Items: []models.MenuItem{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}}},
		{Name: "a", Items: []models.MenuItem{{ID: 2, Name: "B"}}},
	})

	items, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []int64{3, 1, 2}
	if len(items) != len(wantIDs) {
		t.Fatalf("expected %d items, got %d", len(wantIDs), len(items))
	}
	for i, id := range wantIDs {
		if items[i].ID != id {
			t.Errorf("item %d id = %d, want %d", i, items[i].ID, id)
		}
	}
}

func TestInMemoryCatalogRepository_Items(t *testing.T) {
	repo := NewInMemoryCatalogRepository()

	items, err := repo.Items(context.Background(), "beverages")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 beverages, got %d", len(items))
	}

	_, err = repo.Items(context.Background(), "desserts")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestInMemoryCatalogRepository_FindByID(t *testing.T) {
	repo := NewCatalogRepository([]models.Category{
		{Name: "x", Items: []models.MenuItem{{ID: 1, Name: "First", Stock: 2}}},
		{Name: "y", Items: []models.MenuItem{{ID: 1, Name: "Shadowed", Stock: 9}}},
	})

	item, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "First" {
		t.Errorf("expected first match, got %q", item.Name)
	}

	_, err = repo.FindByID(context.Background(), 99)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInMemoryCatalogRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryCatalogRepository()
	ctx := context.Background()

	items, _ := repo.All(ctx)
	items[0].Stock = -100

	item, _ := repo.FindByID(ctx, items[0].ID)
	item.Stock = -50

	again, _ := repo.FindByID(ctx, items[0].ID)
	if again.Stock < 0 {
		t.Errorf("catalog stock was mutated through a returned value: %d", again.Stock)
	}
}

func TestDefaultMenu_UniqueIDs(t *testing.T) {
	if err := validateCatalog(DefaultMenu()); err != nil {
		t.Fatalf("default menu is invalid: %v", err)
	}
}
