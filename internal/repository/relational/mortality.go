package relational

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// afterMortalityInsert runs inside the mortality transaction, between the insert
// and the flock decrement. Tests swap it to inject failures at that point.
var afterMortalityInsert = func(tx *gorm.DB, record *models.MortalityRecord) error { return nil }

// RecordMortality inserts the record and decrements the flock's live count in a
// single transaction. Either both writes persist or neither does. A count larger
// than the birds left in the flock is rejected.
func (s *Store) RecordMortality(ctx context.Context, record *models.MortalityRecord) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flock models.Flock
		err := tx.Select("id", "current_bird_count").First(&flock, record.FlockID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFoundf("flock %d not found", record.FlockID)
		}
		if err != nil {
			return models.Storage("load flock", err)
		}

		if record.Count > flock.CurrentBirdCount {
			return models.Validationf("count %d exceeds the %d birds left in flock %d", record.Count, flock.CurrentBirdCount, record.FlockID)
		}

		if err := tx.Create(record).Error; err != nil {
			return models.Storage("insert mortality record", err)
		}

		if err := afterMortalityInsert(tx, record); err != nil {
			return err
		}

		if record.Count == 0 {
			return nil
		}

		// The guard on current_bird_count keeps a concurrent writer from pushing
		// the count below zero between the read above and this update.
		res := tx.Model(&models.Flock{}).
			Where("id = ? AND current_bird_count >= ?", record.FlockID, record.Count).
			UpdateColumn("current_bird_count", gorm.Expr("current_bird_count - ?", record.Count))
		if res.Error != nil {
			return models.Storage("decrement flock bird count", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.Validationf("count %d exceeds the birds left in flock %d", record.Count, record.FlockID)
		}
		return nil
	})
	if err != nil {
		record.ID = 0
		s.logger.Debug("mortality transaction rolled back", zap.Uint("flock_id", record.FlockID), zap.Error(err))
		return err
	}
	return nil
}
