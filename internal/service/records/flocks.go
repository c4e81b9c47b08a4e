package records

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// FlockService manages flocks.
type FlockService struct {
	store    Store
	recorder Recorder
	logger   *zap.Logger
}

// List returns every flock, most recently acquired first.
func (s *FlockService) List(ctx context.Context) ([]models.Flock, error) {
	return s.store.ListFlocks(ctx)
}

// Get returns one flock.
func (s *FlockService) Get(ctx context.Context, id uint) (models.Flock, error) {
	return s.store.FindFlock(ctx, id)
}

// Create validates the request and persists a new flock whose live count starts
// at its initial count.
func (s *FlockService) Create(ctx context.Context, req models.FlockRequest) (models.Flock, error) {
	flock, err := buildFlock(req)
	if err != nil {
		return models.Flock{}, err
	}
	if err := s.store.CreateFlock(ctx, &flock); err != nil {
		return models.Flock{}, err
	}

	s.recorder.RecordCreated(EntityFlock)
	s.logger.Info("flock created", zap.Uint("flock_id", flock.ID), zap.Int("birds", flock.InitialBirdCount))
	return flock, nil
}

func buildFlock(req models.FlockRequest) (models.Flock, error) {
	name, err := requiredText("name", firstNonEmpty(req.Name, req.FlockName))
	if err != nil {
		return models.Flock{}, err
	}
	breed, err := requiredText("breed", req.Breed)
	if err != nil {
		return models.Flock{}, err
	}
	initial, err := requiredCount("initialBirdCount", req.InitialBirdCount)
	if err != nil {
		return models.Flock{}, err
	}
	acquired, err := requiredDate("acquisitionDate", req.AcquisitionDate)
	if err != nil {
		return models.Flock{}, err
	}

	status := models.FlockActive
	if raw := strings.ToLower(strings.TrimSpace(firstNonEmpty(req.Status, req.FlockStatus))); raw != "" {
		status = models.FlockStatus(raw)
		if !status.Valid() {
			return models.Flock{}, models.Validationf("status must be active or inactive")
		}
	}

	return models.Flock{
		Name:             name,
		Breed:            breed,
		InitialBirdCount: initial,
		CurrentBirdCount: initial,
		AcquisitionDate:  acquired,
		Status:           status,
	}, nil
}
