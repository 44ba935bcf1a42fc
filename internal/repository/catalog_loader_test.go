package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to create catalog file: %v", err)
	}
	return path
}

func TestLoadCatalogFiles(t *testing.T) {
	dir := t.TempDir()

	file1 := writeCatalog(t, dir, "food.yaml", `
categories:
  - name: breakfast
    items:
      - {id: 1, name: Idli, price: 40, rating: 4.5, stock: 3, image: idli.jpg}
  - name: lunch
    items:
      - {id: 2, name: Thali, price: 120, stock: 5}
`)
	file2 := writeCatalog(t, dir, "drinks.yaml", `
categories:
  - name: beverages
    items:
      - {id: 10, name: Chai, price: 20, stock: 50}
  - name: breakfast
    items:
      - {id: 3, name: Poha, price: 35, stock: 4}
`)

	repo, err := LoadCatalogFiles(context.Background(), []string{file1, file2})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cats, _ := repo.Categories(context.Background())
	want := []string{"breakfast", "lunch", "beverages"}
	if len(cats) != len(want) {
		t.Fatalf("expected categories %v, got %v", want, cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, cats[i], want[i])
		}
	}

	breakfast, _ := repo.Items(context.Background(), "breakfast")
	if len(breakfast) != 2 || breakfast[1].Name != "Poha" {
		t.Errorf("expected merged breakfast [Idli Poha], got %+v", breakfast)
	}
	if breakfast[0].ImageRef != "idli.jpg" {
		t.Errorf("expected image ref idli.jpg, got %q", breakfast[0].ImageRef)
	}
}

func TestLoadCatalogFiles_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("no paths", func(t *testing.T) {
		if _, err := LoadCatalogFiles(context.Background(), nil); err == nil {
			t.Error("expected error for empty file paths, got nil")
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		if _, err := LoadCatalogFiles(context.Background(), []string{"/non/existent/menu.yaml"}); err == nil {
			t.Error("expected error for non-existent file, got nil")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeCatalog(t, dir, "bad.yaml", "categories: [oops")
		if _, err := LoadCatalogFiles(context.Background(), []string{path}); err == nil {
			t.Error("expected parse error, got nil")
		}
	})

	t.Run("duplicate ids across files", func(t *testing.T) {
		a := writeCatalog(t, dir, "a.yaml", "categories:\n  - name: x\n    items:\n      - {id: 1, name: A}\n")
		b := writeCatalog(t, dir, "b.yaml", "categories:\n  - name: y\n    items:\n      - {id: 1, name: B}\n")
		if _, err := LoadCatalogFiles(context.Background(), []string{a, b}); err == nil {
			t.Error("expected duplicate id error, got nil")
		}
	})

	t.Run("negative stock", func(t *testing.T) {
		path := writeCatalog(t, dir, "neg.yaml", "categories:\n  - name: x\n    items:\n      - {id: 1, name: A, stock: -1}\n")
		if _, err := LoadCatalogFiles(context.Background(), []string{path}); err == nil {
			t.Error("expected negative stock error, got nil")
		}
	})
}
