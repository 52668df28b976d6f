package resolver

import (
	"context"
	"fmt"

	"astroshield/internal/mockdata"
	"astroshield/models"
)

// Service names reported in health snapshots.
const (
	serviceNASA    = "nasa_neo_api"
	serviceUSGS    = "usgs_services"
	serviceBuiltin = "builtin_catalog"
)

// HealthSnapshot probes each data source and aggregates an overall status.
// Probe panics are captured as error statuses; this path never fails.
func (s *Service) HealthSnapshot(ctx context.Context) models.HealthSnapshot {
	services := map[string]models.ServiceStatus{
		serviceNASA:    s.probeNASA(ctx),
		serviceUSGS:    s.probeUSGS(ctx),
		serviceBuiltin: {Status: models.StatusOK, Detail: "deterministic fallback catalog available"},
	}
	return models.HealthSnapshot{
		Status:   AggregateStatus(services),
		Services: services,
	}
}

func (s *Service) probeNASA(ctx context.Context) (status models.ServiceStatus) {
	if s.neoSource == nil {
		return models.ServiceStatus{
			Status: models.StatusDisabled,
			Detail: "live NEO lookups disabled, builtin catalog in use",
		}
	}
	defer func() {
		if r := recover(); r != nil {
			status = models.ServiceStatus{Status: models.StatusError, Detail: fmt.Sprint(r)}
		}
	}()

	resolvedID := mockdata.ResolveAlias(s.cfg.Simulation.DefaultAsteroidID)
	if _, err := s.neoSource.FetchNEO(ctx, resolvedID); err != nil {
		return models.ServiceStatus{Status: models.StatusDegraded, Detail: err.Error()}
	}
	return models.ServiceStatus{Status: models.StatusOK}
}

func (s *Service) probeUSGS(ctx context.Context) (status models.ServiceStatus) {
	if s.envSource == nil {
		return models.ServiceStatus{
			Status: models.StatusDisabled,
			Detail: "live site lookups disabled, builtin profiles in use",
		}
	}
	defer func() {
		if r := recover(); r != nil {
			status = models.ServiceStatus{Status: models.StatusError, Detail: fmt.Sprint(r)}
		}
	}()

	report := s.envSource.BuildEnvironmentReport(ctx, probeLatitude, probeLongitude)
	if report.ElevationM != nil || report.IsCoastalZone != nil || report.TectonicSummary != nil {
		return models.ServiceStatus{Status: models.StatusOK}
	}
	return models.ServiceStatus{
		Status: models.StatusDegraded,
		Detail: "no usable data for probe location, builtin profiles in use",
	}
}

// Probe coordinate for the USGS health check. The specific point does not
// matter; it only has to elicit a response.
const (
	probeLatitude  = 0.0
	probeLongitude = 0.0
)

// AggregateStatus folds per-service statuses into one overall status. Any
// error wins, then any degraded; a set of ok/disabled/unknown containing at
// least one ok reads as ok, while disabled/unknown alone read as degraded
// so a fully disabled deployment is never reported healthy.
func AggregateStatus(services map[string]models.ServiceStatus) string {
	seen := make(map[string]bool, len(services))
	for _, svc := range services {
		status := svc.Status
		if status == "" {
			status = models.StatusUnknown
		}
		seen[status] = true
	}

	switch {
	case seen[models.StatusError]:
		return models.StatusError
	case seen[models.StatusDegraded]:
		return models.StatusDegraded
	}

	for status := range seen {
		if status != models.StatusOK && status != models.StatusDisabled && status != models.StatusUnknown {
			return models.StatusUnknown
		}
	}
	if seen[models.StatusOK] {
		return models.StatusOK
	}
	return models.StatusDegraded
}
