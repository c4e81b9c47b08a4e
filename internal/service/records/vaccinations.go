package records

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// VaccinationService manages vaccination records.
type VaccinationService struct {
	store    Store
	recorder Recorder
	logger   *zap.Logger
}

// List returns every vaccination with its flock name, newest first.
func (s *VaccinationService) List(ctx context.Context) ([]models.VaccinationView, error) {
	return s.store.ListVaccinations(ctx)
}

// Create validates the request and persists a vaccination for an existing flock.
func (s *VaccinationService) Create(ctx context.Context, req models.VaccinationRequest) (models.VaccinationRecord, error) {
	flockID, err := requiredFlockID(req.FlockID)
	if err != nil {
		return models.VaccinationRecord{}, err
	}
	vaccine, err := requiredText("vaccineName", req.VaccineName)
	if err != nil {
		return models.VaccinationRecord{}, err
	}
	date, err := requiredDate("vaccinationDate", req.VaccinationDate)
	if err != nil {
		return models.VaccinationRecord{}, err
	}

	if _, err := s.store.FindFlock(ctx, flockID); err != nil {
		return models.VaccinationRecord{}, err
	}

	record := models.VaccinationRecord{
		FlockID:         flockID,
		VaccineName:     vaccine,
		Method:          strings.TrimSpace(req.Method),
		VaccinationDate: date,
		Notes:           strings.TrimSpace(req.Notes),
	}
	if err := s.store.CreateVaccination(ctx, &record); err != nil {
		return models.VaccinationRecord{}, err
	}

	s.recorder.RecordCreated(EntityVaccination)
	s.logger.Info("vaccination recorded", zap.Uint("flock_id", flockID), zap.String("vaccine", vaccine))
	return record, nil
}
