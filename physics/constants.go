package physics

// Constants groups the physical constants and floors shared by the engine
// and the orbital simulator. A single value is constructed at startup and
// injected into the components that need it.
type Constants struct {
	// AsteroidDensityKGM3 is assumed when an object's bulk density is
	// unknown (typical rocky asteroid).
	AsteroidDensityKGM3 float64
	// MegatonTNTJoules converts joules to TNT-equivalent megatons.
	MegatonTNTJoules float64
	// MinEffectiveVelocityMS floors the post-deflection velocity so an
	// over-aggressive delta-v can never yield zero or negative energy.
	MinEffectiveVelocityMS float64
	// AUKilometers is the IAU astronomical unit expressed in kilometers.
	AUKilometers float64
	// MinSamplePoints floors the orbital track sample count.
	MinSamplePoints int
}

// DefaultConstants returns the canonical constant set.
func DefaultConstants() Constants {
	return Constants{
		AsteroidDensityKGM3:    3000.0,
		MegatonTNTJoules:       4.184e15,
		MinEffectiveVelocityMS: 1.0,
		AUKilometers:           149597870.7,
		MinSamplePoints:        60,
	}
}
