package repository

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout of a catalog file. Category order in the
// file is the display order.
type catalogFile struct {
	Categories []models.Category `yaml:"categories"`
}

// fileLoadResult holds the result of loading a single file
type fileLoadResult struct {
	index      int
	categories []models.Category
	err        error
}

// LoadCatalogFiles reads several catalog files concurrently and merges them in
// the order given. A category that appears in more than one file has its
// items appended to its first occurrence.
func LoadCatalogFiles(ctx context.Context, paths []string) (*InMemoryCatalogRepository, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files provided")
	}

	resultChan := make(chan fileLoadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, filePath string) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				resultChan <- fileLoadResult{index: index, err: err}
				return
			}
			cats, err := LoadCatalogFile(filePath)
			resultChan <- fileLoadResult{index: index, categories: cats, err: err}
		}(i, path)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]fileLoadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	merged := make([]models.Category, 0)
	position := make(map[string]int)
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load catalog file %d: %w", i+1, result.err)
		}
		for _, c := range result.categories {
			if at, ok := position[c.Name]; ok {
				merged[at].Items = append(merged[at].Items, c.Items...)
				continue
			}
			position[c.Name] = len(merged)
			merged = append(merged, c)
		}
	}

	if err := validateCatalog(merged); err != nil {
		return nil, err
	}

	return NewCatalogRepository(merged), nil
}

// LoadCatalogFile loads and parses a single YAML catalog file
func LoadCatalogFile(path string) ([]models.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return ParseCatalog(data)
}

// ParseCatalog parses YAML catalog data
func ParseCatalog(data []byte) ([]models.Category, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return cf.Categories, nil
}

func validateCatalog(categories []models.Category) error {
	seen := make(map[int64]string)
	for _, c := range categories {
		if c.Name == "" {
			return fmt.Errorf("category without a name")
		}
		for _, item := range c.Items {
			if prev, dup := seen[item.ID]; dup {
				return fmt.Errorf("duplicate item id %d in %s and %s", item.ID, prev, c.Name)
			}
			seen[item.ID] = c.Name

			if item.Price < 0 {
				return fmt.Errorf("item %d has a negative price", item.ID)
			}
			if item.Stock < 0 {
				return fmt.Errorf("item %d has negative stock", item.ID)
			}
		}
	}
	return nil
}
