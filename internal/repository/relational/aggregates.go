package relational

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// ActiveFlockTotals returns the number of active flocks and their combined live birds.
func (s *Store) ActiveFlockTotals(ctx context.Context) (flocks int64, birds int64, err error) {
	row := s.db.WithContext(ctx).
		Model(&models.Flock{}).
		Select("COUNT(*), COALESCE(SUM(current_bird_count), 0)").
		Where("status = ?", models.FlockActive).
		Row()
	if err := row.Scan(&flocks, &birds); err != nil {
		return 0, 0, models.Storage("sum active flocks", err)
	}
	return flocks, birds, nil
}

// EggTotals sums egg quantities and grades for dates in [from, to].
func (s *Store) EggTotals(ctx context.Context, from, to string) (quantity, gradeA, gradeB int64, err error) {
	row := s.db.WithContext(ctx).
		Model(&models.EggLog{}).
		Select("COALESCE(SUM(quantity), 0), COALESCE(SUM(grade_a), 0), COALESCE(SUM(grade_b), 0)").
		Where("date BETWEEN ? AND ?", from, to).
		Row()
	if err := row.Scan(&quantity, &gradeA, &gradeB); err != nil {
		return 0, 0, 0, models.Storage("sum eggs", err)
	}
	return quantity, gradeA, gradeB, nil
}

// MortalityTotal sums birds lost for dates in [from, to].
func (s *Store) MortalityTotal(ctx context.Context, from, to string) (int64, error) {
	var total int64
	row := s.db.WithContext(ctx).
		Model(&models.MortalityRecord{}).
		Select("COALESCE(SUM(count), 0)").
		Where("date BETWEEN ? AND ?", from, to).
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, models.Storage("sum mortality", err)
	}
	return total, nil
}

// FeedPurchasedKg sums feed bought for dates in [from, to].
func (s *Store) FeedPurchasedKg(ctx context.Context, from, to string) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := s.db.WithContext(ctx).
		Model(&models.FeedPurchase{}).
		Select("COALESCE(SUM(quantity_kg), 0)").
		Where("purchase_date BETWEEN ? AND ?", from, to).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, models.Storage("sum feed purchases", err)
	}
	return total.Round(2), nil
}

// SalesRevenue sums stored sale totals for dates in [from, to].
func (s *Store) SalesRevenue(ctx context.Context, from, to string) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := s.db.WithContext(ctx).
		Model(&models.SaleRecord{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("sale_date BETWEEN ? AND ?", from, to).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, models.Storage("sum sales", err)
	}
	return total.Round(2), nil
}

// VaccinationCount counts vaccinations given for dates in [from, to].
func (s *Store) VaccinationCount(ctx context.Context, from, to string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.VaccinationRecord{}).
		Where("vaccination_date BETWEEN ? AND ?", from, to).
		Count(&total).Error
	if err != nil {
		return 0, models.Storage("count vaccinations", err)
	}
	return total, nil
}
