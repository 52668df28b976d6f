package mockdata

import "astroshield/models"

// Bounding box covering the southern California coast, the one builtin
// region with a coastal high-risk profile.
const (
	coastalLatMin = 32.5
	coastalLatMax = 36.5
	coastalLonMin = -122.0
	coastalLonMax = -114.0
)

const (
	coastalElevationM = 92.0
	inlandElevationM  = 265.0
)

// EnvironmentReport returns a deterministic site profile for a coordinate:
// a low coastal high-risk profile inside the southern California box, a
// moderate inland profile everywhere else.
func EnvironmentReport(lat, lon float64) models.EnvironmentReport {
	coastal := lat >= coastalLatMin && lat <= coastalLatMax &&
		lon >= coastalLonMin && lon <= coastalLonMax

	elevation := inlandElevationM
	risk := models.RiskModerate
	if coastal {
		elevation = coastalElevationM
		risk = models.RiskHigh
	}

	isCoastal := coastal
	return models.EnvironmentReport{
		ElevationM:      &elevation,
		IsCoastalZone:   &isCoastal,
		SeismicZoneRisk: risk,
	}
}
