package relational

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// CreateFlock inserts a new flock and fills in its id.
func (s *Store) CreateFlock(ctx context.Context, flock *models.Flock) error {
	if err := s.db.WithContext(ctx).Create(flock).Error; err != nil {
		return models.Storage("insert flock", err)
	}
	return nil
}

// FindFlock loads one flock by id.
func (s *Store) FindFlock(ctx context.Context, id uint) (models.Flock, error) {
	var flock models.Flock
	err := s.db.WithContext(ctx).First(&flock, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Flock{}, models.NotFoundf("flock %d not found", id)
	}
	if err != nil {
		return models.Flock{}, models.Storage("load flock", err)
	}
	return flock, nil
}

// ListFlocks returns every flock, most recently acquired first.
func (s *Store) ListFlocks(ctx context.Context) ([]models.Flock, error) {
	var flocks []models.Flock
	err := s.db.WithContext(ctx).
		Order("acquisition_date DESC").
		Order("id DESC").
		Find(&flocks).Error
	if err != nil {
		return nil, models.Storage("list flocks", err)
	}
	return nonNil(flocks), nil
}

// CreateFeedPurchase inserts a feed purchase.
func (s *Store) CreateFeedPurchase(ctx context.Context, feed *models.FeedPurchase) error {
	if err := s.db.WithContext(ctx).Create(feed).Error; err != nil {
		return models.Storage("insert feed purchase", err)
	}
	return nil
}

// ListFeedPurchases returns every feed purchase, newest first.
func (s *Store) ListFeedPurchases(ctx context.Context) ([]models.FeedPurchase, error) {
	var feed []models.FeedPurchase
	err := s.db.WithContext(ctx).
		Order("purchase_date DESC").
		Order("id DESC").
		Find(&feed).Error
	if err != nil {
		return nil, models.Storage("list feed purchases", err)
	}
	return nonNil(feed), nil
}

// CreateEggLog inserts an egg collection log.
func (s *Store) CreateEggLog(ctx context.Context, log *models.EggLog) error {
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return models.Storage("insert egg log", err)
	}
	return nil
}

// ListEggLogs returns every egg log with its flock name, newest first.
func (s *Store) ListEggLogs(ctx context.Context) ([]models.EggLogView, error) {
	var logs []models.EggLogView
	err := s.db.WithContext(ctx).
		Table("egg_logs").
		Select("egg_logs.*, COALESCE(flocks.name, ?) AS flock_name", models.UnknownFlockName).
		Joins("LEFT JOIN flocks ON flocks.id = egg_logs.flock_id").
		Order("egg_logs.date DESC").
		Order("egg_logs.id DESC").
		Scan(&logs).Error
	if err != nil {
		return nil, models.Storage("list egg logs", err)
	}
	return nonNil(logs), nil
}

// ListMortality returns every mortality record with its flock name, newest first.
func (s *Store) ListMortality(ctx context.Context) ([]models.MortalityView, error) {
	var records []models.MortalityView
	err := s.db.WithContext(ctx).
		Table("mortality_records").
		Select("mortality_records.*, COALESCE(flocks.name, ?) AS flock_name", models.UnknownFlockName).
		Joins("LEFT JOIN flocks ON flocks.id = mortality_records.flock_id").
		Order("mortality_records.date DESC").
		Order("mortality_records.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, models.Storage("list mortality records", err)
	}
	return nonNil(records), nil
}

// CreateVaccination inserts a vaccination record.
func (s *Store) CreateVaccination(ctx context.Context, record *models.VaccinationRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return models.Storage("insert vaccination record", err)
	}
	return nil
}

// ListVaccinations returns every vaccination record with its flock name, newest first.
func (s *Store) ListVaccinations(ctx context.Context) ([]models.VaccinationView, error) {
	var records []models.VaccinationView
	err := s.db.WithContext(ctx).
		Table("vaccination_records").
		Select("vaccination_records.*, COALESCE(flocks.name, ?) AS flock_name", models.UnknownFlockName).
		Joins("LEFT JOIN flocks ON flocks.id = vaccination_records.flock_id").
		Order("vaccination_records.vaccination_date DESC").
		Order("vaccination_records.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, models.Storage("list vaccination records", err)
	}
	return nonNil(records), nil
}

// CreateSale inserts a sale. TotalPrice must already be computed.
func (s *Store) CreateSale(ctx context.Context, sale *models.SaleRecord) error {
	if err := s.db.WithContext(ctx).Create(sale).Error; err != nil {
		return models.Storage("insert sale", err)
	}
	return nil
}

// ListSales returns every sale, newest first.
func (s *Store) ListSales(ctx context.Context) ([]models.SaleRecord, error) {
	var sales []models.SaleRecord
	err := s.db.WithContext(ctx).
		Order("sale_date DESC").
		Order("id DESC").
		Find(&sales).Error
	if err != nil {
		return nil, models.Storage("list sales", err)
	}
	return nonNil(sales), nil
}
