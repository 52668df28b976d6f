package resolver

import (
	"context"
	"errors"
	"testing"

	"astroshield/models"
	"astroshield/reader/nasa"
)

func statuses(names ...string) map[string]models.ServiceStatus {
	out := make(map[string]models.ServiceStatus, len(names))
	for i, name := range names {
		out[string(rune('a'+i))] = models.ServiceStatus{Status: name}
	}
	return out
}

func TestAggregateStatus(t *testing.T) {
	cases := []struct {
		name     string
		services map[string]models.ServiceStatus
		want     string
	}{
		{"ok with disabled", statuses(models.StatusOK, models.StatusDisabled), models.StatusOK},
		{"degraded wins over ok", statuses(models.StatusDegraded, models.StatusOK), models.StatusDegraded},
		{"error wins over ok", statuses(models.StatusError, models.StatusOK), models.StatusError},
		{"all disabled", statuses(models.StatusDisabled, models.StatusDisabled), models.StatusDegraded},
		{"ok with unknown", statuses(models.StatusOK, models.StatusUnknown), models.StatusOK},
		{"unrecognized status", statuses(models.StatusOK, "weird"), models.StatusUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AggregateStatus(c.services); got != c.want {
				t.Errorf("AggregateStatus = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHealthSnapshotAllDisabled(t *testing.T) {
	svc := NewService(testConfig(), nil, nil)
	snapshot := svc.HealthSnapshot(context.Background())

	if snapshot.Services[serviceNASA].Status != models.StatusDisabled {
		t.Errorf("nasa status = %q, want disabled", snapshot.Services[serviceNASA].Status)
	}
	if snapshot.Services[serviceUSGS].Status != models.StatusDisabled {
		t.Errorf("usgs status = %q, want disabled", snapshot.Services[serviceUSGS].Status)
	}
	if snapshot.Services[serviceBuiltin].Status != models.StatusOK {
		t.Errorf("builtin status = %q, want ok", snapshot.Services[serviceBuiltin].Status)
	}
	if snapshot.Status != models.StatusOK {
		t.Errorf("overall = %q, want ok with builtin healthy", snapshot.Status)
	}
}

func TestHealthSnapshotDegradedNASA(t *testing.T) {
	source := &stubNEOSource{err: &nasa.APIError{Op: "lookup", Err: errors.New("timeout")}}
	svc := NewService(testConfig(), source, nil)
	snapshot := svc.HealthSnapshot(context.Background())

	if snapshot.Services[serviceNASA].Status != models.StatusDegraded {
		t.Errorf("nasa status = %q, want degraded", snapshot.Services[serviceNASA].Status)
	}
	if snapshot.Status != models.StatusDegraded {
		t.Errorf("overall = %q, want degraded", snapshot.Status)
	}
}

func TestHealthSnapshotProbePanicBecomesError(t *testing.T) {
	svc := NewService(testConfig(), nil, &stubEnvSource{panics: true})
	snapshot := svc.HealthSnapshot(context.Background())

	if snapshot.Services[serviceUSGS].Status != models.StatusError {
		t.Errorf("usgs status = %q, want error from recovered panic", snapshot.Services[serviceUSGS].Status)
	}
	if snapshot.Services[serviceUSGS].Detail == "" {
		t.Error("expected panic detail on error status")
	}
	if snapshot.Status != models.StatusError {
		t.Errorf("overall = %q, want error", snapshot.Status)
	}
}

func TestHealthSnapshotUSGSNoSignal(t *testing.T) {
	svc := NewService(testConfig(), nil, &stubEnvSource{report: models.EnvironmentReport{SeismicZoneRisk: models.RiskUnknown}})
	snapshot := svc.HealthSnapshot(context.Background())

	if snapshot.Services[serviceUSGS].Status != models.StatusDegraded {
		t.Errorf("usgs status = %q, want degraded for empty signal", snapshot.Services[serviceUSGS].Status)
	}
}
