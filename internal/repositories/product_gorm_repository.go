package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"inventory/internal/models"
)

const byName = "name ASC, id ASC"

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Insert validates product, stores it and sets product.ID.
func (r *GORMProductRepository) Insert(ctx context.Context, product *models.Product) (int64, error) {
	if err := product.Validate(); err != nil {
		return 0, err
	}

	row := *product
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, storageFailure("insert product", err)
	}
	product.ID = row.ID
	return row.ID, nil
}

// List retrieves all products ordered by name.
func (r *GORMProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).Order(byName).Find(&products).Error; err != nil {
		return nil, storageFailure("list products", err)
	}
	return products, nil
}

// Search retrieves products whose name or category contains substring. A
// blank substring lists everything.
func (r *GORMProductRepository) Search(ctx context.Context, substring string) ([]models.Product, error) {
	needle := strings.TrimSpace(substring)
	if needle == "" {
		return r.List(ctx)
	}

	pattern := "%" + escapeLike(strings.ToLower(needle)) + "%"
	products := make([]models.Product, 0)
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order(byName).
		Find(&products).Error
	if err != nil {
		return nil, storageFailure("search products", err)
	}
	return products, nil
}

// Delete removes the product with id.
func (r *GORMProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return false, storageFailure("delete product", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
