package metric

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveRequest(t *testing.T) {
	r := NewRegistry()

	r.ObserveRequest("GET", "/api/resources", 200, 42*time.Millisecond)
	r.ObserveRequest("GET", "/api/resources", 200, 17*time.Millisecond)
	r.ObserveRequest("POST", "/api/auth/login", 401, 5*time.Millisecond)

	mfs, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	got := map[string]bool{}
	for _, mf := range mfs {
		got[mf.GetName()] = true
	}
	for _, name := range []string{
		"skillshare_client_requests_total",
		"skillshare_client_request_duration_seconds",
	} {
		if !got[name] {
			t.Errorf("metric %s not gathered", name)
		}
	}
}

func TestObserveLogin(t *testing.T) {
	r := NewRegistry()

	r.ObserveLogin(true)
	r.ObserveLogin(false)
	r.ObserveLogin(false)

	mfs, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	for _, mf := range mfs {
		if mf.GetName() != "skillshare_session_login_attempts_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			outcome := m.GetLabel()[0].GetValue()
			val := m.GetCounter().GetValue()
			switch outcome {
			case "success":
				if val != 1 {
					t.Errorf("success = %v, want 1", val)
				}
			case "failure":
				if val != 2 {
					t.Errorf("failure = %v, want 2", val)
				}
			}
		}
		return
	}
	t.Fatal("login attempts metric not gathered")
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.SessionEvictions.Inc()
	r.CacheHits.Inc()
	r.CacheMisses.Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{
		"skillshare_session_evictions_total 1",
		"skillshare_cache_hits_total 1",
		"skillshare_cache_misses_total 1",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("exposition missing %q", name)
		}
	}
}
