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

// BuyerService handles business logic related to buyers.
type BuyerService struct {
	repo   repositories.BuyerRepository
	events EventPublisher
}

// NewBuyerService creates a new BuyerService. events may be nil.
func NewBuyerService(repo repositories.BuyerRepository, events EventPublisher) *BuyerService {
	return &BuyerService{
		repo:   repo,
		events: events,
	}
}

// AddBuyer validates raw input and stores the resulting buyer.
func (s *BuyerService) AddBuyer(ctx context.Context, in validation.BuyerInput) (buyer *models.Buyer, err error) {
	started := time.Now()
	defer func() { observe("buyer", "insert", started, err) }()

	buyer, err = validation.CheckBuyer(in)
	if err != nil {
		return nil, err
	}
	if _, err = s.repo.Insert(ctx, buyer); err != nil {
		return nil, err
	}

	logger.Info().Int64("buyer_id", buyer.ID).Msg("buyer added")
	publish(ctx, s.events, rabbitmq.BuyerCreated, buyer.ID, buyer)
	return buyer, nil
}

// ListBuyers retrieves all buyers ordered by name.
func (s *BuyerService) ListBuyers(ctx context.Context) (buyers []models.Buyer, err error) {
	started := time.Now()
	defer func() { observe("buyer", "list", started, err) }()
	return s.repo.List(ctx)
}

// DeleteBuyer deletes a buyer by its ID and reports whether it existed.
func (s *BuyerService) DeleteBuyer(ctx context.Context, id int64) (removed bool, err error) {
	started := time.Now()
	defer func() { observeDelete("buyer", started, removed, err) }()

	if err = checkID(id); err != nil {
		return false, err
	}
	removed, err = s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		logger.Info().Int64("buyer_id", id).Msg("buyer deleted")
		publish(ctx, s.events, rabbitmq.BuyerDeleted, id, nil)
	}
	return removed, nil
}
