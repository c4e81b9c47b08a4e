package mongodb

import "github.com/mamadbah2/poultryfarm/internal/domain/models"

func toDocument(report models.DailyReport) reportDocument {
	return reportDocument{
		Date:            report.Date,
		EggsCollected:   report.EggsCollected,
		GradeA:          report.GradeA,
		GradeB:          report.GradeB,
		Mortality:       report.Mortality,
		FeedPurchasedKg: report.FeedPurchasedKg.StringFixed(2),
		SalesAmount:     report.SalesAmount.StringFixed(2),
		Vaccinations:    report.Vaccinations,
		ActiveFlocks:    report.ActiveFlocks,
		LiveBirds:       report.LiveBirds,
		CreatedAt:       report.CreatedAt,
	}
}
