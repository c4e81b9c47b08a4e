package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		models.Validationf("bad"):                      http.StatusBadRequest,
		models.Conflictf("User already exists"):        http.StatusBadRequest,
		models.NotFoundf("flock 2 not found"):          http.StatusNotFound,
		models.Authf("No token provided"):              http.StatusUnauthorized,
		models.Forbiddenf("Invalid token"):             http.StatusForbidden,
		models.Storage("insert", errors.New("locked")): http.StatusInternalServerError,
		errors.New("unexpected"):                       http.StatusInternalServerError,
	}
	for err, want := range cases {
		if got := StatusFor(err); got != want {
			t.Errorf("StatusFor(%v) = %d, want %d", err, got, want)
		}
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	for name, tc := range map[string]struct {
		err  error
		want int
	}{
		"up":   {nil, http.StatusOK},
		"down": {errors.New("database is closed"), http.StatusServiceUnavailable},
	} {
		r := gin.New()
		r.GET("/healthz", Health(pingerFunc(func(context.Context) error { return tc.err }), nil))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", name, rec.Code, tc.want)
		}
	}
}

type fakeReports struct {
	day time.Time
	err error
}

func (f *fakeReports) DailyReport(_ context.Context, day time.Time) (models.DailyReport, error) {
	f.day = day
	return models.DailyReport{Date: day.Format(models.DateLayout)}, f.err
}

type fakeStats struct{ err error }

func (f fakeStats) Stats(context.Context) (models.DashboardStats, error) {
	return models.DashboardStats{TotalFlocks: 3}, f.err
}

func TestDailyReportParsesDateInLocation(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	reports := &fakeReports{}
	h := NewDashboardHandler(fakeStats{}, reports, loc, nil)

	r := gin.New()
	r.GET("/report", h.DailyReport)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report?date=2026-10-19", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if reports.day.Location() != loc || reports.day.Format(models.DateLayout) != "2026-10-19" {
		t.Fatalf("day = %v", reports.day)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report?date=19-10-2026", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d", rec.Code)
	}
}

func TestStatsHidesStorageDetails(t *testing.T) {
	h := NewDashboardHandler(fakeStats{err: models.Storage("sum flocks", errors.New("secret dsn leaked"))}, &fakeReports{}, time.UTC, nil)
	r := gin.New()
	r.GET("/stats", h.Stats)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != false || body["message"] != internalErrorMessage {
		t.Fatalf("body = %v", body)
	}
}
