package repository

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mk-watch-mods/models"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// CatalogRepository serves the static product catalog from memory
type CatalogRepository struct {
	names       []string
	collections map[string][]models.Product
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// NewCatalogRepository loads the catalog from path, or the embedded one when path is empty
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	if path == "" {
		return LoadCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return LoadCatalog(data)
}

// LoadCatalog parses and validates a YAML catalog
func LoadCatalog(data []byte) (*CatalogRepository, error) {
	var file models.CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return NewCatalogFromCollections(file.Collections)
}

// NewCatalogFromCollections validates collections and builds the store
func NewCatalogFromCollections(collections []models.Collection) (*CatalogRepository, error) {
	if len(collections) == 0 {
		return nil, fmt.Errorf("catalog has no collections")
	}

	repo := &CatalogRepository{
		collections: make(map[string][]models.Product, len(collections)),
	}

	for ci, c := range collections {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("collection %d: name is required", ci)
		}
		if _, exists := repo.collections[name]; exists {
			return nil, fmt.Errorf("collection %q: duplicate name", name)
		}

		seen := make(map[string]bool, len(c.Products))
		products := make([]models.Product, 0, len(c.Products))
		for pi, p := range c.Products {
			if err := validateProduct(p); err != nil {
				return nil, fmt.Errorf("collection %q product %d: %w", name, pi, err)
			}
			if seen[p.ID] {
				return nil, fmt.Errorf("collection %q: duplicate product id %q", name, p.ID)
			}
			seen[p.ID] = true

			p.Collection = name
			p.Images = append([]string(nil), p.Images...)
			products = append(products, p)
		}

		repo.names = append(repo.names, name)
		repo.collections[name] = products
	}

	return repo, nil
}

func validateProduct(p models.Product) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("id is required")
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("name is required")
	case strings.TrimSpace(p.Price) == "":
		return fmt.Errorf("price is required")
	}
	for i, img := range p.Images {
		if strings.TrimSpace(img) == "" {
			return fmt.Errorf("image %d: empty path", i)
		}
	}
	return nil
}

// Collections returns collection names in catalog order
func (r *CatalogRepository) Collections() []string {
	return append([]string(nil), r.names...)
}

// List returns the products of a collection in order; unknown collections yield nothing
func (r *CatalogRepository) List(collection string) []models.Product {
	products, ok := r.collections[collection]
	if !ok {
		return nil
	}
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Find returns a copy of the product or ErrNotFound
func (r *CatalogRepository) Find(collection string, id string) (*models.Product, error) {
	for _, p := range r.collections[collection] {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("product %q in collection %q: %w", id, collection, ErrNotFound)
}
