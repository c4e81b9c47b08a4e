package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matches(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matches(metric *dto.Metric, labels map[string]string) bool {
	found := 0
	for _, pair := range metric.GetLabel() {
		if want, ok := labels[pair.GetName()]; ok {
			if want != pair.GetValue() {
				return false
			}
			found++
		}
	}
	return found == len(labels)
}

func TestCounters(t *testing.T) {
	m := New()
	m.RecordCreated("sale")
	m.RecordCreated("sale")
	m.RecordCreated("flock")
	m.BirdsLost(3)
	m.BirdsLost(0)
	m.ObserveRequest("POST", "/api/sales", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "", 404, time.Millisecond)

	if got := counterValue(t, m, "poultryfarm_records_created_total", map[string]string{"entity": "sale"}); got != 2 {
		t.Fatalf("sales created = %v", got)
	}
	if got := counterValue(t, m, "poultryfarm_birds_lost_total", nil); got != 3 {
		t.Fatalf("birds lost = %v", got)
	}
	if got := counterValue(t, m, "poultryfarm_http_requests_total", map[string]string{"route": "unmatched", "status": "404"}); got != 1 {
		t.Fatalf("unmatched requests = %v", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.BirdsLost(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "poultryfarm_birds_lost_total 1") {
		t.Fatalf("metrics output missing counter:\n%s", body)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordCreated("flock")
	m.BirdsLost(2)
	m.ObserveRequest("GET", "/", 200, time.Second)
	if m.Registry() != nil {
		t.Fatal("nil metrics should have no registry")
	}
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
}
