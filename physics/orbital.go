package physics

import (
	"math"

	"astroshield/models"
)

// Simulator converts Keplerian elements and an applied delta-v into sampled
// baseline and deflected heliocentric tracks. It is a state-free geometric
// transform, not an orbital-mechanics integration.
type Simulator struct {
	consts Constants
}

// NewSimulator creates a simulator around the provided constant set.
func NewSimulator(consts Constants) *Simulator {
	return &Simulator{consts: consts}
}

// SimulateOrbitalChange samples both tracks over evenly spaced true
// anomalies and estimates the MOID of each against Earth's assumed circular
// 1 AU orbit. A sample count below the floor is silently raised, never
// rejected. The deflection model maps delta-v onto bounded fractional
// changes of the semi-major axis and eccentricity so mitigation can never
// produce a degenerate orbit.
func (s *Simulator) SimulateOrbitalChange(elements models.OrbitalElements, deltaVMS float64, samplePoints int) models.OrbitalSolution {
	if samplePoints < s.consts.MinSamplePoints {
		samplePoints = s.consts.MinSamplePoints
	}

	aKM := elements.SemiMajorAxisAU * s.consts.AUKilometers

	baseline := s.samplePath(elements, aKM, elements.Eccentricity, samplePoints)
	baselineMOID := s.approximateMOID(baseline)

	// Apply delta-v as a fractional adjustment to the semi-major axis and
	// eccentricity. The factor is clamped so extreme inputs stay bounded.
	factor := clamp(deltaVMS/12000.0, -0.5, 0.5)
	deflectedA := aKM * (1.0 - 0.3*factor)
	deflectedE := clamp(elements.Eccentricity*(1.0-0.6*factor), 0.01, 0.95)

	deflected := s.samplePath(elements, deflectedA, deflectedE, samplePoints)
	deflectedMOID := s.approximateMOID(deflected)

	return models.OrbitalSolution{
		BaselinePath:    baseline,
		DeflectedPath:   deflected,
		BaselineMOIDKM:  baselineMOID,
		DeflectedMOIDKM: deflectedMOID,
		MOIDChangeKM:    baselineMOID - deflectedMOID,
	}
}

// samplePath evaluates the orbit equation at evenly spaced true anomalies
// over [0°, 360°) and rotates each planar point into heliocentric Cartesian
// coordinates by argument-of-periapsis, inclination, and ascending-node
// longitude.
func (s *Simulator) samplePath(elements models.OrbitalElements, aKM, e float64, samplePoints int) []models.PathPoint {
	omega := elements.LongitudeAscendingNodeDeg * math.Pi / 180
	inc := elements.InclinationDeg * math.Pi / 180
	argp := elements.ArgumentPeriapsisDeg * math.Pi / 180

	cosO := math.Cos(omega)
	sinO := math.Sin(omega)
	cosI := math.Cos(inc)
	sinI := math.Sin(inc)

	step := 2 * math.Pi / float64(samplePoints)
	points := make([]models.PathPoint, 0, samplePoints)
	for i := 0; i < samplePoints; i++ {
		anomaly := float64(i) * step
		r := aKM * (1 - e*e) / (1 + e*math.Cos(anomaly))
		trueLon := argp + anomaly

		cosW := math.Cos(trueLon)
		sinW := math.Sin(trueLon)

		points = append(points, models.PathPoint{
			X: r * (cosO*cosW - sinO*sinW*cosI),
			Y: r * (sinO*cosW + cosO*sinW*cosI),
			Z: r * (sinW * sinI),
		})
	}
	return points
}

// approximateMOID estimates the minimum orbit intersection distance as the
// closest approach of the sampled heliocentric-distance envelope to 1 AU.
// It is a visualization-grade proxy whose accuracy is bounded by the sample
// density, not a true geometric minimum between two orbits.
func (s *Simulator) approximateMOID(points []models.PathPoint) float64 {
	minDiff := math.Inf(1)
	for _, p := range points {
		distKM := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		diff := math.Abs(distKM - s.consts.AUKilometers)
		if diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
