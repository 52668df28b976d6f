package resolver

import (
	"context"

	"astroshield/internal/mockdata"
	"astroshield/logger"
	"astroshield/models"
)

// EnvironmentSource is the live site-context provider. Satisfied by the
// USGS client.
type EnvironmentSource interface {
	BuildEnvironmentReport(ctx context.Context, lat, lon float64) models.EnvironmentReport
}

// EnvironmentResolver supplies impact-site context, substituting the
// builtin bounding-box profile when the live source is disabled or returns
// no usable elevation or coastal signal.
type EnvironmentResolver struct {
	source            EnvironmentSource
	tsunamiThresholdM float64
	log               *logger.Log
}

func NewEnvironmentResolver(source EnvironmentSource, tsunamiThresholdM float64) *EnvironmentResolver {
	return &EnvironmentResolver{
		source:            source,
		tsunamiThresholdM: tsunamiThresholdM,
		log:               logger.GetLogger(),
	}
}

// Resolve returns the site report for a coordinate. Never returns an error.
func (r *EnvironmentResolver) Resolve(ctx context.Context, lat, lon float64) models.EnvironmentReport {
	if r.source != nil {
		report := r.source.BuildEnvironmentReport(ctx, lat, lon)
		if report.HasSignal() {
			return report
		}
		r.log.WithComponent("environment_resolver").WithFields(logger.Fields{
			"lat": lat,
			"lon": lon,
		}).Warn("no usable live site signal, using builtin profile")
		logger.IncrementUsgsFallback()
	}
	return mockdata.EnvironmentReport(lat, lon)
}

// TsunamiRisk is true when the site is coastal and lies below the
// configured elevation threshold. Unknown elevation or coastal status
// means no demonstrated risk.
func (r *EnvironmentResolver) TsunamiRisk(elevationM *float64, isCoastal *bool) bool {
	if elevationM == nil || isCoastal == nil {
		return false
	}
	return *isCoastal && *elevationM < r.tsunamiThresholdM
}
