package repositories

import (
	"context"

	"gorm.io/gorm"

	"inventory/internal/models"
)

// GORMBuyerRepository is a GORM implementation of BuyerRepository.
type GORMBuyerRepository struct {
	db *gorm.DB
}

// NewGORMBuyerRepository creates a new instance of GORMBuyerRepository.
func NewGORMBuyerRepository(db *gorm.DB) *GORMBuyerRepository {
	return &GORMBuyerRepository{
		db: db,
	}
}

// Insert validates buyer, stores it and sets buyer.ID.
func (r *GORMBuyerRepository) Insert(ctx context.Context, buyer *models.Buyer) (int64, error) {
	if err := buyer.Validate(); err != nil {
		return 0, err
	}

	row := *buyer
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, storageFailure("insert buyer", err)
	}
	buyer.ID = row.ID
	return row.ID, nil
}

// List retrieves all buyers ordered by name.
func (r *GORMBuyerRepository) List(ctx context.Context) ([]models.Buyer, error) {
	buyers := make([]models.Buyer, 0)
	if err := r.db.WithContext(ctx).Order(byName).Find(&buyers).Error; err != nil {
		return nil, storageFailure("list buyers", err)
	}
	return buyers, nil
}

// Delete removes the buyer with id.
func (r *GORMBuyerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Buyer{}, id)
	if res.Error != nil {
		return false, storageFailure("delete buyer", res.Error)
	}
	return res.RowsAffected > 0, nil
}
