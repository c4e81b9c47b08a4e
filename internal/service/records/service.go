package records

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// Entity names used for logging and metrics.
const (
	EntityFlock       = "flock"
	EntityFeed        = "feed"
	EntityEggs        = "eggs"
	EntityMortality   = "mortality"
	EntityVaccination = "vaccination"
	EntitySale        = "sale"
)

// Recorder receives counters for persisted records.
type Recorder interface {
	RecordCreated(entity string)
	BirdsLost(n int)
}

// Store is the persistence surface the record services need.
type Store interface {
	CreateFlock(ctx context.Context, flock *models.Flock) error
	FindFlock(ctx context.Context, id uint) (models.Flock, error)
	ListFlocks(ctx context.Context) ([]models.Flock, error)

	CreateFeedPurchase(ctx context.Context, feed *models.FeedPurchase) error
	ListFeedPurchases(ctx context.Context) ([]models.FeedPurchase, error)

	CreateEggLog(ctx context.Context, log *models.EggLog) error
	ListEggLogs(ctx context.Context) ([]models.EggLogView, error)

	RecordMortality(ctx context.Context, record *models.MortalityRecord) error
	ListMortality(ctx context.Context) ([]models.MortalityView, error)

	CreateVaccination(ctx context.Context, record *models.VaccinationRecord) error
	ListVaccinations(ctx context.Context) ([]models.VaccinationView, error)

	CreateSale(ctx context.Context, sale *models.SaleRecord) error
	ListSales(ctx context.Context) ([]models.SaleRecord, error)
}

// Services bundles one record service per entity.
type Services struct {
	Flocks       *FlockService
	Feed         *FeedService
	Eggs         *EggService
	Mortality    *MortalityService
	Vaccinations *VaccinationService
	Sales        *SaleService
}

// New wires every record service against the same store.
func New(store Store, recorder Recorder, currencyPrefix string, logger *zap.Logger) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Services{
		Flocks:       &FlockService{store: store, recorder: recorder, logger: logger.Named(EntityFlock)},
		Feed:         &FeedService{store: store, recorder: recorder, logger: logger.Named(EntityFeed)},
		Eggs:         &EggService{store: store, recorder: recorder, logger: logger.Named(EntityEggs)},
		Mortality:    &MortalityService{store: store, recorder: recorder, logger: logger.Named(EntityMortality)},
		Vaccinations: &VaccinationService{store: store, recorder: recorder, logger: logger.Named(EntityVaccination)},
		Sales:        &SaleService{store: store, recorder: recorder, currency: currencyPrefix, logger: logger.Named(EntitySale)},
	}
}

type nopRecorder struct{}

func (nopRecorder) RecordCreated(string) {}
func (nopRecorder) BirdsLost(int)        {}
