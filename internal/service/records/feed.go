package records

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// FeedService manages feed purchases.
type FeedService struct {
	store    Store
	recorder Recorder
	logger   *zap.Logger
}

// List returns every feed purchase, newest first.
func (s *FeedService) List(ctx context.Context) ([]models.FeedPurchase, error) {
	return s.store.ListFeedPurchases(ctx)
}

// Create validates the request and persists a feed purchase.
func (s *FeedService) Create(ctx context.Context, req models.FeedRequest) (models.FeedPurchase, error) {
	feedType, err := requiredText("type", firstNonEmpty(req.Type, req.FeedType))
	if err != nil {
		return models.FeedPurchase{}, err
	}
	quantity, err := requiredAmount("quantityKg", req.QuantityKg)
	if err != nil {
		return models.FeedPurchase{}, err
	}
	purchased, err := requiredDate("purchaseDate", req.PurchaseDate)
	if err != nil {
		return models.FeedPurchase{}, err
	}

	feed := models.FeedPurchase{
		Type:         feedType,
		QuantityKg:   models.NewAmount(quantity),
		PurchaseDate: purchased,
		Supplier:     strings.TrimSpace(req.Supplier),
	}
	if err := s.store.CreateFeedPurchase(ctx, &feed); err != nil {
		return models.FeedPurchase{}, err
	}

	s.recorder.RecordCreated(EntityFeed)
	s.logger.Info("feed purchase recorded", zap.Uint("feed_id", feed.ID), zap.String("kg", feed.QuantityKg.String()))
	return feed, nil
}
