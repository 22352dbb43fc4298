package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mk-watch-mods/models"
	"mk-watch-mods/repository"
)

func testCatalog(t *testing.T) *repository.CatalogRepository {
	t.Helper()
	catalog, err := repository.NewCatalogFromCollections([]models.Collection{
		{
			Name: "Custom Pieces",
			Products: []models.Product{
				{ID: "mystic-sea-1", Name: "Mystic Sea 1", Price: "$295", Images: []string{"a.jpg", "b.jpg"}, Diameter: "40mm"},
				{ID: "bare", Name: "Bare", Price: "$100"},
			},
		},
		{
			Name: "Homage",
			Products: []models.Product{
				{ID: "homage-diver-1", Name: "Homage Diver 1", Price: "$265", Images: []string{"h1.jpg"}},
				{ID: "homage-diver-2", Name: "Homage Diver 2", Price: "$265", Images: []string{"h2a.jpg", "h2b.jpg", "h2c.jpg"}, DialColor: "Black", Notes: "Black **ceramic** bezel"},
				{ID: "homage-diver-3", Name: "Homage Diver 3", Price: "$265"},
			},
		},
	})
	require.NoError(t, err)
	return catalog
}
