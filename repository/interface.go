package repository

import (
	"context"
	"errors"

	"mk-watch-mods/models"
)

// ErrNotFound is returned when a collection or product cannot be resolved
var ErrNotFound = errors.New("not found")

// CatalogRepositoryInterface defines the read-only contract of the catalog store
type CatalogRepositoryInterface interface {
	Collections() []string
	List(collection string) []models.Product
	Find(collection string, id string) (*models.Product, error)
}

// ReservationRepositoryInterface defines the contract for storing reservation requests
type ReservationRepositoryInterface interface {
	Insert(ctx context.Context, reservation *models.Reservation) error
	ListRecent(ctx context.Context, limit int) ([]models.Reservation, error)
}
