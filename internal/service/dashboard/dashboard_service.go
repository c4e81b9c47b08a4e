package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// RevenueWindowDays is the number of calendar days, today included, that
// revenueLast30Days covers.
const RevenueWindowDays = 30

// Aggregates is the read-only query surface the dashboard needs.
type Aggregates interface {
	ActiveFlockTotals(ctx context.Context) (flocks int64, birds int64, err error)
	EggTotals(ctx context.Context, from, to string) (quantity, gradeA, gradeB int64, err error)
	SalesRevenue(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Service computes the dashboard counters.
type Service struct {
	store    Aggregates
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a dashboard service. Calendar days are evaluated in loc.
func NewService(store Aggregates, loc *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, location: loc, logger: logger, now: time.Now}
}

// Stats returns active flocks, their live birds, eggs logged today and sales
// revenue over the trailing window. Each figure is its own query; they are not
// read from a single snapshot.
func (s *Service) Stats(ctx context.Context) (models.DashboardStats, error) {
	today := s.now().In(s.location)
	todayKey := today.Format(models.DateLayout)
	windowStart := today.AddDate(0, 0, -(RevenueWindowDays - 1)).Format(models.DateLayout)

	flocks, birds, err := s.store.ActiveFlockTotals(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	eggs, _, _, err := s.store.EggTotals(ctx, todayKey, todayKey)
	if err != nil {
		return models.DashboardStats{}, err
	}

	revenue, err := s.store.SalesRevenue(ctx, windowStart, todayKey)
	if err != nil {
		return models.DashboardStats{}, err
	}

	s.logger.Debug("dashboard stats computed",
		zap.Int64("flocks", flocks),
		zap.Int64("birds", birds),
		zap.Int64("eggs_today", eggs),
		zap.String("revenue", revenue.StringFixed(2)))

	return models.DashboardStats{
		TotalFlocks:       flocks,
		TotalBirds:        birds,
		EggsToday:         eggs,
		RevenueLast30Days: revenue,
	}, nil
}
