package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// ReportExporter appends one spreadsheet row per daily report. A date already
// present in the key column is not written again.
type ReportExporter struct {
	sheet  Sheet
	logger *zap.Logger
}

// NewReportExporter builds an exporter writing into sheet.
func NewReportExporter(sheet Sheet, logger *zap.Logger) *ReportExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportExporter{sheet: sheet, logger: logger}
}

// Name identifies the exporter as a report sink.
func (e *ReportExporter) Name() string { return "sheets" }

// PublishReport appends the report row unless the date was already exported.
func (e *ReportExporter) PublishReport(ctx context.Context, report models.DailyReport, _ string) error {
	dates, err := e.sheet.KeyColumn(ctx)
	if err != nil {
		return fmt.Errorf("load exported dates: %w", err)
	}
	for _, date := range dates {
		if date == report.Date {
			e.logger.Info("report already exported", zap.String("date", report.Date))
			return nil
		}
	}

	return e.sheet.AppendRow(ctx, ReportRow(report))
}

// ReportRow lays out a report in the sheet's column order.
func ReportRow(report models.DailyReport) []interface{} {
	return []interface{}{
		report.Date,
		report.EggsCollected,
		report.GradeA,
		report.GradeB,
		report.Mortality,
		report.FeedPurchasedKg.StringFixed(2),
		report.SalesAmount.StringFixed(2),
		report.Vaccinations,
		report.ActiveFlocks,
		report.LiveBirds,
	}
}
