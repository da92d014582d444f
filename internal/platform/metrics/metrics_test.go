package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRegistryObserveRequest(t *testing.T) {
	reg := NewRegistry("auth")

	for i := 0; i < 5; i++ {
		reg.ObserveRequest("POST", "/auth/login", 200, 12*time.Millisecond)
	}
	reg.ObserveRequest("POST", "/auth/login", 401, 3*time.Millisecond)

	families, err := reg.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	var ok200, ok401 float64
	var samples uint64
	for _, fam := range families {
		switch fam.GetName() {
		case "auth_requests_total":
			for _, m := range fam.GetMetric() {
				labels := map[string]string{}
				for _, label := range m.GetLabel() {
					labels[label.GetName()] = label.GetValue()
				}
				switch labels["status"] {
				case "200":
					ok200 = m.GetCounter().GetValue()
				case "401":
					ok401 = m.GetCounter().GetValue()
				}
			}
		case "auth_request_duration_seconds":
			for _, m := range fam.GetMetric() {
				samples = m.GetHistogram().GetSampleCount()
			}
		}
	}

	if ok200 != 5 || ok401 != 1 {
		t.Fatalf("counters = %v/%v, expected 5/1", ok200, ok401)
	}
	if samples != 6 {
		t.Fatalf("histogram samples = %d, expected 6", samples)
	}
}

func TestRegistryHandlerExposition(t *testing.T) {
	reg := NewRegistry("transaction")
	reg.ObserveRequest("GET", "/transactions/:account_number", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	reg.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "transaction_requests_total") {
		t.Fatalf("exposition missing counter:\n%s", rec.Body.String())
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry("auth")
	b := NewRegistry("auth")

	a.ObserveLogin("success")

	families, err := b.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != "auth_login_attempts_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			if m.GetCounter().GetValue() != 0 {
				t.Fatal("registries must not share state")
			}
		}
	}
}
