package models

// SimulationRequest carries the raw user inputs for one simulation call.
// Zero or absent numeric values mean "use the reference value".
type SimulationRequest struct {
	DiameterM         float64 `json:"diameter_m"`
	VelocityKMS       float64 `json:"velocity_kms"`
	DeflectionDeltaV  float64 `json:"deflection_delta_v"`
	ImpactLat         float64 `json:"impact_lat"`
	ImpactLon         float64 `json:"impact_lon"`
	AsteroidID        string  `json:"asteroid_id"`
	LatProvided       bool    `json:"-"`
	LonProvided       bool    `json:"-"`
}

// SimulationInputs echoes the effective inputs after reference substitution.
type SimulationInputs struct {
	DiameterM        float64 `json:"diameter_m"`
	VelocityKMS      float64 `json:"velocity_kms"`
	DeflectionDeltaV float64 `json:"deflection_delta_v"`
	ImpactLat        float64 `json:"impact_lat"`
	ImpactLon        float64 `json:"impact_lon"`
	AsteroidID       string  `json:"asteroid_id"`
}

// EnergyMetrics holds the kinetic-energy outputs of the physics engine.
type EnergyMetrics struct {
	MassKG              float64 `json:"mass_kg"`
	EffectiveVelocityMS float64 `json:"effective_velocity_ms"`
	EnergyJoules        float64 `json:"energy_joules"`
	EnergyMT            float64 `json:"energy_mt"`
}

// ImpactEffects holds the ground-effect estimates.
type ImpactEffects struct {
	CraterDiameterKM float64 `json:"crater_diameter_km"`
	SeismicMagnitude float64 `json:"seismic_magnitude"`
}

// PathPoint is one heliocentric Cartesian sample of an orbital track, in
// kilometers.
type PathPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// OrbitalSolution carries the sampled baseline and deflected tracks plus
// the approximate MOID of each against Earth's assumed circular 1 AU orbit.
// MOIDChangeKM is baseline minus deflected: positive means the deflection
// increased separation. WithinHazardDistance reports whether the deflected
// MOID still falls below the configured hazard threshold.
type OrbitalSolution struct {
	BaselinePath         []PathPoint `json:"baseline_path"`
	DeflectedPath        []PathPoint `json:"deflected_path"`
	BaselineMOIDKM       float64     `json:"baseline_moid_km"`
	DeflectedMOIDKM      float64     `json:"deflected_moid_km"`
	MOIDChangeKM         float64     `json:"moid_change_km"`
	WithinHazardDistance bool        `json:"within_hazard_distance"`
}

// EnvironmentResult is the environment report plus the derived tsunami flag
// as exposed on the simulation response.
type EnvironmentResult struct {
	ElevationM      *float64 `json:"elevation_m"`
	IsCoastalZone   *bool    `json:"is_coastal_zone"`
	SeismicZoneRisk string   `json:"seismic_zone_risk"`
	TsunamiRisk     bool     `json:"tsunami_risk"`
	TectonicSummary *string  `json:"tectonic_summary"`
}

// SimulationResponse is the merged response record for one simulation call.
type SimulationResponse struct {
	SimulationID    string            `json:"simulation_id"`
	Inputs          SimulationInputs  `json:"inputs"`
	NEOReference    NEOData           `json:"neo_reference"`
	Energy          EnergyMetrics     `json:"energy"`
	ImpactEffects   ImpactEffects     `json:"impact_effects"`
	Environment     EnvironmentResult `json:"environment"`
	OrbitalSolution OrbitalSolution   `json:"orbital_solution"`
}
