package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

type fakeAggregates struct {
	flocks, birds int64
	eggs          int64
	revenue       decimal.Decimal
	err           error

	eggRange     [2]string
	revenueRange [2]string
}

func (f *fakeAggregates) ActiveFlockTotals(context.Context) (int64, int64, error) {
	return f.flocks, f.birds, f.err
}

func (f *fakeAggregates) EggTotals(_ context.Context, from, to string) (int64, int64, int64, error) {
	f.eggRange = [2]string{from, to}
	return f.eggs, 0, 0, nil
}

func (f *fakeAggregates) SalesRevenue(_ context.Context, from, to string) (decimal.Decimal, error) {
	f.revenueRange = [2]string{from, to}
	return f.revenue, nil
}

func TestStatsUsesLocalCalendarDay(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	store := &fakeAggregates{flocks: 2, birds: 50, eggs: 120, revenue: decimal.RequireFromString("1500.50")}
	svc := NewService(store, nairobi, nil)
	// 22:30 UTC on the 18th is already the 19th in Nairobi.
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 22, 30, 0, 0, time.UTC) }

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalFlocks != 2 || stats.TotalBirds != 50 || stats.EggsToday != 120 {
		t.Fatalf("stats = %+v", stats)
	}
	if !stats.RevenueLast30Days.Equal(decimal.RequireFromString("1500.5")) {
		t.Fatalf("revenue = %s", stats.RevenueLast30Days)
	}
	if store.eggRange != [2]string{"2026-10-19", "2026-10-19"} {
		t.Fatalf("egg range = %v", store.eggRange)
	}
	if store.revenueRange != [2]string{"2026-09-20", "2026-10-19"} {
		t.Fatalf("revenue range = %v", store.revenueRange)
	}
}

func TestStatsOnEmptyFarmIsZero(t *testing.T) {
	svc := NewService(&fakeAggregates{}, time.UTC, nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := models.DashboardStats{}
	if stats.TotalFlocks != want.TotalFlocks || stats.TotalBirds != 0 || stats.EggsToday != 0 || !stats.RevenueLast30Days.IsZero() {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestStatsPropagatesStoreError(t *testing.T) {
	boom := models.Storage("count flocks", errors.New("db down"))
	svc := NewService(&fakeAggregates{err: boom}, time.UTC, nil)

	if _, err := svc.Stats(context.Background()); !errors.Is(err, models.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
