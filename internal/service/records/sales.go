package records

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// SaleService manages sales.
type SaleService struct {
	store    Store
	recorder Recorder
	currency string
	logger   *zap.Logger
}

// List returns every sale, newest first, with the stored total formatted for display.
func (s *SaleService) List(ctx context.Context) ([]models.SaleView, error) {
	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.SaleView, 0, len(sales))
	for _, sale := range sales {
		views = append(views, models.SaleView{
			SaleRecord:          sale,
			FormattedTotalPrice: models.FormatMoney(s.currency, sale.TotalPrice.Decimal),
		})
	}
	return views, nil
}

// Create validates the request, computes the total and persists the sale.
func (s *SaleService) Create(ctx context.Context, req models.SaleRequest) (models.SaleRecord, error) {
	item, err := requiredText("item", req.Item)
	if err != nil {
		return models.SaleRecord{}, err
	}
	quantity, err := requiredAmount("quantity", req.Quantity)
	if err != nil {
		return models.SaleRecord{}, err
	}
	unitPrice, err := requiredAmount("unitPrice", req.UnitPrice)
	if err != nil {
		return models.SaleRecord{}, err
	}
	date, err := requiredDate("saleDate", req.SaleDate)
	if err != nil {
		return models.SaleRecord{}, err
	}

	product := quantity.Mul(unitPrice)
	total := product.Round(2)
	if total.IsZero() && !product.IsZero() {
		return models.SaleRecord{}, models.Validationf("total price is below the smallest currency unit")
	}
	if total.GreaterThan(maxTotal) {
		return models.SaleRecord{}, models.Validationf("total price is too large")
	}

	sale := models.SaleRecord{
		Item:       item,
		Quantity:   models.NewAmount(quantity),
		UnitPrice:  models.NewAmount(unitPrice),
		TotalPrice: models.NewAmount(total),
		SaleDate:   date,
		Customer:   strings.TrimSpace(req.Customer),
	}
	if err := s.store.CreateSale(ctx, &sale); err != nil {
		return models.SaleRecord{}, err
	}

	s.recorder.RecordCreated(EntitySale)
	s.logger.Info("sale recorded", zap.Uint("sale_id", sale.ID), zap.String("total", sale.TotalPrice.StringFixed(2)))
	return sale, nil
}
