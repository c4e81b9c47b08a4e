package records

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// MortalityService records bird losses against flocks.
type MortalityService struct {
	store    Store
	recorder Recorder
	logger   *zap.Logger
}

// List returns every mortality record with its flock name, newest first.
func (s *MortalityService) List(ctx context.Context) ([]models.MortalityView, error) {
	return s.store.ListMortality(ctx)
}

// Create validates the request, then stores the record and decrements the
// flock's live count as one transaction. The updated flock is not returned.
func (s *MortalityService) Create(ctx context.Context, req models.MortalityRequest) (models.MortalityRecord, error) {
	flockID, err := requiredFlockID(req.FlockID)
	if err != nil {
		return models.MortalityRecord{}, err
	}
	date, err := requiredDate("date", req.Date)
	if err != nil {
		return models.MortalityRecord{}, err
	}
	count, err := requiredCount("count", req.Count)
	if err != nil {
		return models.MortalityRecord{}, err
	}

	record := models.MortalityRecord{
		FlockID: flockID,
		Date:    date,
		Count:   count,
		Cause:   strings.TrimSpace(req.Cause),
	}
	if err := s.store.RecordMortality(ctx, &record); err != nil {
		s.logger.Warn("mortality not recorded", zap.Uint("flock_id", flockID), zap.Int("count", count), zap.Error(err))
		return models.MortalityRecord{}, err
	}

	s.recorder.RecordCreated(EntityMortality)
	s.recorder.BirdsLost(count)
	s.logger.Info("mortality recorded", zap.Uint("flock_id", flockID), zap.Int("count", count), zap.String("cause", record.Cause))
	return record, nil
}
