package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats holds the derived counters rendered on the dashboard.
type DashboardStats struct {
	TotalFlocks       int64           `json:"totalFlocks"`
	TotalBirds        int64           `json:"totalBirds"`
	EggsToday         int64           `json:"eggsToday"`
	RevenueLast30Days decimal.Decimal `json:"revenueLast30Days"`
}

// DailyReport represents the aggregated figures for one farm day.
type DailyReport struct {
	Date            string          `bson:"date" json:"date"`
	EggsCollected   int64           `bson:"eggs_collected" json:"eggsCollected"`
	GradeA          int64           `bson:"grade_a" json:"gradeA"`
	GradeB          int64           `bson:"grade_b" json:"gradeB"`
	Mortality       int64           `bson:"mortality" json:"mortality"`
	FeedPurchasedKg decimal.Decimal `bson:"feed_purchased_kg" json:"feedPurchasedKg"`
	SalesAmount     decimal.Decimal `bson:"sales_amount" json:"salesAmount"`
	Vaccinations    int64           `bson:"vaccinations" json:"vaccinations"`
	ActiveFlocks    int64           `bson:"active_flocks" json:"activeFlocks"`
	LiveBirds       int64           `bson:"live_birds" json:"liveBirds"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
}
