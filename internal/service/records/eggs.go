package records

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// EggService manages egg collection logs.
type EggService struct {
	store    Store
	recorder Recorder
	logger   *zap.Logger
}

// List returns every egg log with its flock name, newest first.
func (s *EggService) List(ctx context.Context) ([]models.EggLogView, error) {
	return s.store.ListEggLogs(ctx)
}

// Create validates the request and persists an egg log for an existing flock.
// Grades default to zero and are not reconciled against the quantity.
func (s *EggService) Create(ctx context.Context, req models.EggRequest) (models.EggLog, error) {
	flockID, err := requiredFlockID(req.FlockID)
	if err != nil {
		return models.EggLog{}, err
	}
	date, err := requiredDate("date", req.Date)
	if err != nil {
		return models.EggLog{}, err
	}
	quantity, err := requiredCount("quantity", req.Quantity)
	if err != nil {
		return models.EggLog{}, err
	}
	gradeA, err := optionalCount("gradeA", req.GradeA)
	if err != nil {
		return models.EggLog{}, err
	}
	gradeB, err := optionalCount("gradeB", req.GradeB)
	if err != nil {
		return models.EggLog{}, err
	}

	if _, err := s.store.FindFlock(ctx, flockID); err != nil {
		return models.EggLog{}, err
	}

	log := models.EggLog{
		FlockID:  flockID,
		Date:     date,
		Quantity: quantity,
		GradeA:   gradeA,
		GradeB:   gradeB,
	}
	if err := s.store.CreateEggLog(ctx, &log); err != nil {
		return models.EggLog{}, err
	}

	s.recorder.RecordCreated(EntityEggs)
	s.logger.Info("egg log recorded", zap.Uint("flock_id", flockID), zap.Int("quantity", quantity))
	return log, nil
}
