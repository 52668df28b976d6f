package models

// Data source tags recorded on every resolved NEO record.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// OrbitalElements holds the six Keplerian parameters describing a
// near-Earth object's idealized two-body orbit. Angles are degrees, the
// semi-major axis is astronomical units. Values are never mutated after
// construction.
type OrbitalElements struct {
	SemiMajorAxisAU           float64 `json:"semi_major_axis_au"`
	Eccentricity              float64 `json:"eccentricity"`
	InclinationDeg            float64 `json:"inclination_deg"`
	LongitudeAscendingNodeDeg float64 `json:"longitude_ascending_node_deg"`
	ArgumentPeriapsisDeg      float64 `json:"argument_periapsis_deg"`
	MeanAnomalyDeg            float64 `json:"mean_anomaly_deg"`
}

// DiameterRange carries the estimated diameter bounds in meters. Nil bounds
// mean the source had no estimate.
type DiameterRange struct {
	MinM *float64 `json:"min_m"`
	MaxM *float64 `json:"max_m"`
}

// CloseApproach summarizes the nearest recorded close-approach event.
type CloseApproach struct {
	Date                *string  `json:"date"`
	OrbitingBody        *string  `json:"orbiting_body"`
	MissDistanceKM      *float64 `json:"miss_distance_km"`
	RelativeVelocityKMS *float64 `json:"relative_velocity_kms"`
}

// NEOData is the canonical physical description of one near-Earth object,
// fully populated by the reference resolver regardless of upstream health.
// MassKG is nil until derived from diameter and density by the physics
// engine. Records are built fresh per resolution call and never mutated.
type NEOData struct {
	Source               string          `json:"source"`
	AsteroidID           string          `json:"asteroid_id"`
	FriendlyID           string          `json:"friendly_id"`
	Name                 string          `json:"name"`
	Designation          string          `json:"designation"`
	AbsoluteMagnitudeH   *float64        `json:"absolute_magnitude_h"`
	DiameterM            float64         `json:"diameter_m"`
	DiameterRangeM       DiameterRange   `json:"diameter_range_m"`
	VelocityKMS          float64         `json:"velocity_kms"`
	DensityKGM3          float64         `json:"density_kg_m3"`
	MassKG               *float64        `json:"mass_kg"`
	IsPotentiallyHazard  bool            `json:"is_potentially_hazardous"`
	OrbitClass           *string         `json:"orbit_class"`
	CloseApproach        CloseApproach   `json:"close_approach"`
	OrbitalElements      OrbitalElements `json:"orbital_elements"`
	ReferenceURL         *string         `json:"nasa_jpl_url"`
}

// CatalogEntry is the lightweight listing record served by the catalog
// endpoint and dropdown selectors.
type CatalogEntry struct {
	AsteroidID          string   `json:"asteroid_id"`
	FriendlyID          string   `json:"friendly_id"`
	Name                string   `json:"name"`
	Designation         string   `json:"designation"`
	AbsoluteMagnitudeH  *float64 `json:"absolute_magnitude_h"`
	DiameterMinM        *float64 `json:"diameter_min_m"`
	DiameterMaxM        *float64 `json:"diameter_max_m"`
	RelativeVelocityKMS *float64 `json:"relative_velocity_kms"`
	CloseApproachDate   *string  `json:"close_approach_date"`
	IsPotentiallyHazard bool     `json:"is_potentially_hazardous"`
	OrbitClass          *string  `json:"orbit_class"`
}
