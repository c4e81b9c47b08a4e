package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// StatsService computes dashboard counters.
type StatsService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

// ReportService builds daily reports on demand.
type ReportService interface {
	DailyReport(ctx context.Context, day time.Time) (models.DailyReport, error)
}

// DashboardHandler serves the dashboard counters and the daily report.
type DashboardHandler struct {
	stats    StatsService
	reports  ReportService
	location *time.Location
	logger   *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter. Report dates
// default to today in loc.
func NewDashboardHandler(stats StatsService, reports ReportService, loc *time.Location, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &DashboardHandler{stats: stats, reports: reports, location: loc, logger: logger}
}

// Stats returns {totalFlocks, totalBirds, eggsToday, revenueLast30Days}.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DailyReport returns the report for ?date=YYYY-MM-DD, today by default.
func (h *DashboardHandler) DailyReport(c *gin.Context) {
	day := time.Now().In(h.location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(models.DateLayout, raw, h.location)
		if err != nil {
			respondError(c, h.logger, models.Validationf("date must be in YYYY-MM-DD format"))
			return
		}
		day = parsed
	}

	report, err := h.reports.DailyReport(c.Request.Context(), day)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
