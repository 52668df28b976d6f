package models

// Seismic-zone risk categories derived from tectonic region names.
const (
	RiskUnknown  = "Unknown"
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
	RiskVeryHigh = "Very High"
)

// EnvironmentReport describes the impact site. Nil pointer fields mean the
// source had no answer, which is distinct from a false or zero value.
type EnvironmentReport struct {
	ElevationM      *float64 `json:"elevation_m"`
	IsCoastalZone   *bool    `json:"is_coastal_zone"`
	SeismicZoneRisk string   `json:"seismic_zone_risk"`
	TectonicSummary *string  `json:"tectonic_summary"`
}

// HasSignal reports whether the live source produced any usable elevation
// or coastal answer. Reports without a signal trigger fallback substitution.
func (r EnvironmentReport) HasSignal() bool {
	return r.ElevationM != nil || r.IsCoastalZone != nil
}
