package physics

import (
	"errors"
	"math"

	"astroshield/models"
)

// ErrMissingMass is returned when neither a mass nor a diameter is
// available to derive the kinetic energy from.
var ErrMissingMass = errors.New("either mass_kg or diameter_m must be provided")

// Engine computes impact energy and ground-effect estimates. All methods
// are pure and total over non-negative numeric inputs: out-of-range values
// are clamped, never rejected.
type Engine struct {
	consts Constants
}

// NewEngine creates an engine around the provided constant set.
func NewEngine(consts Constants) *Engine {
	return &Engine{consts: consts}
}

// MassFromGeometry treats the object as a uniform sphere and derives its
// mass from diameter and bulk density. A non-positive density falls back to
// the default rocky-asteroid density.
func (e *Engine) MassFromGeometry(diameterM, densityKGM3 float64) float64 {
	if densityKGM3 <= 0 {
		densityKGM3 = e.consts.AsteroidDensityKGM3
	}
	radiusM := math.Max(diameterM, 0) / 2.0
	volumeM3 := (4.0 / 3.0) * math.Pi * radiusM * radiusM * radiusM
	return volumeM3 * densityKGM3
}

// EffectiveVelocity applies a signed deflection delta-v to the approach
// velocity. Positive delta-v decelerates, negative accelerates. The result
// is floored at the configured minimum.
func (e *Engine) EffectiveVelocity(velocityKMS, deltaVMS float64) float64 {
	return math.Max(velocityKMS*1000.0-deltaVMS, e.consts.MinEffectiveVelocityMS)
}

// KineticEnergy returns the impact energy metrics in joules and
// TNT-equivalent megatons. When massKG is nil the mass is derived from
// diameter and density; absence of both mass and diameter violates the
// input contract and yields ErrMissingMass.
func (e *Engine) KineticEnergy(massKG *float64, velocityKMS, deltaVMS float64, diameterM *float64, densityKGM3 float64) (models.EnergyMetrics, error) {
	var mass float64
	switch {
	case massKG != nil:
		mass = *massKG
	case diameterM != nil:
		mass = e.MassFromGeometry(*diameterM, densityKGM3)
	default:
		return models.EnergyMetrics{}, ErrMissingMass
	}

	vEff := e.EffectiveVelocity(velocityKMS, deltaVMS)
	joules := 0.5 * mass * vEff * vEff

	return models.EnergyMetrics{
		MassKG:              mass,
		EffectiveVelocityMS: vEff,
		EnergyJoules:        joules,
		EnergyMT:            joules / e.consts.MegatonTNTJoules,
	}, nil
}

// CraterDiameter estimates the transient crater diameter in kilometers
// using a cube-root scaling law tuned for visualization.
func (e *Engine) CraterDiameter(energyMT float64) float64 {
	energyMT = math.Max(energyMT, 0)
	diameterKM := 0.11 * math.Cbrt(energyMT)
	return math.Max(diameterKM, 0)
}

// SeismicMagnitude approximates a Richter-like local magnitude from impact
// energy via a Gutenberg-Richter style energy relation. The joule floor
// keeps the logarithm defined for zero energy; the result never goes
// negative.
func (e *Engine) SeismicMagnitude(energyMT float64) float64 {
	joules := math.Max(energyMT*e.consts.MegatonTNTJoules, 1.0)
	magnitude := 0.67*math.Log10(joules) - 5.8
	return math.Max(magnitude, 0)
}
