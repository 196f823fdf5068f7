package repositories

import (
	"context"

	"inventory/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Insert stores product and returns the id assigned by storage.
	Insert(ctx context.Context, product *models.Product) (int64, error)
	// List returns every product ordered by name.
	List(ctx context.Context) ([]models.Product, error)
	// Search matches substring against name or category, ignoring case.
	Search(ctx context.Context, substring string) ([]models.Product, error)
	// Delete reports whether a row with id existed and was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
