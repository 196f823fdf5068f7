package repositories

import (
	"context"

	"inventory/internal/models"
)

// BuyerRepository defines the interface for buyer data access.
type BuyerRepository interface {
	Insert(ctx context.Context, buyer *models.Buyer) (int64, error)
	List(ctx context.Context) ([]models.Buyer, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
