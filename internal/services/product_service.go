package services

import (
	"context"
	"time"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/validation"
	"inventory/pkg/logger"
	"inventory/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// AddProduct validates raw input and stores the resulting product. Invalid
// input is reported as *models.ValidationError without touching storage.
func (s *ProductService) AddProduct(ctx context.Context, in validation.ProductInput) (product *models.Product, err error) {
	started := time.Now()
	defer func() { observe("product", "insert", started, err) }()

	product, err = validation.CheckProduct(in)
	if err != nil {
		return nil, err
	}
	if _, err = s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}

	logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product added")
	publish(ctx, s.events, rabbitmq.ProductCreated, product.ID, product)
	return product, nil
}

// ListProducts retrieves all products ordered by name.
func (s *ProductService) ListProducts(ctx context.Context) (products []models.Product, err error) {
	started := time.Now()
	defer func() { observe("product", "list", started, err) }()
	return s.repo.List(ctx)
}

// SearchProducts retrieves products whose name or category contains query.
func (s *ProductService) SearchProducts(ctx context.Context, query string) (products []models.Product, err error) {
	started := time.Now()
	defer func() { observe("product", "search", started, err) }()
	return s.repo.Search(ctx, query)
}

// DeleteProduct deletes a product by its ID and reports whether it existed.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (removed bool, err error) {
	started := time.Now()
	defer func() { observeDelete("product", started, removed, err) }()

	if err = checkID(id); err != nil {
		return false, err
	}
	removed, err = s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		logger.Info().Int64("product_id", id).Msg("product deleted")
		publish(ctx, s.events, rabbitmq.ProductDeleted, id, nil)
	}
	return removed, nil
}
