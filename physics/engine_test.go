package physics

import (
	"math"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConstants())
}

func TestMassFromGeometry(t *testing.T) {
	e := newTestEngine()

	// 210 m rocky sphere at 3000 kg/m3.
	mass := e.MassFromGeometry(210, 3000)
	want := (4.0 / 3.0) * math.Pi * 105 * 105 * 105 * 3000
	if math.Abs(mass-want) > want*1e-12 {
		t.Fatalf("mass = %g, want %g", mass, want)
	}
	if mass < 1.45e10 || mass > 1.46e10 {
		t.Errorf("mass = %g, expected about 1.454e10", mass)
	}
}

func TestMassFromGeometryNegativeDiameter(t *testing.T) {
	e := newTestEngine()
	if got := e.MassFromGeometry(-50, 3000); got != 0 {
		t.Errorf("negative diameter should clamp to zero mass, got %g", got)
	}
}

func TestMassFromGeometryDefaultDensity(t *testing.T) {
	e := newTestEngine()
	if got, want := e.MassFromGeometry(100, 0), e.MassFromGeometry(100, 3000); got != want {
		t.Errorf("unknown density should use default: got %g want %g", got, want)
	}
}

func TestEffectiveVelocity(t *testing.T) {
	e := newTestEngine()
	cases := []struct {
		velocityKMS float64
		deltaVMS    float64
		want        float64
	}{
		{20, 0, 20000},
		{20, 25000, 1.0},
		{20, 5000, 15000},
		{20, -1000, 21000},
	}
	for _, c := range cases {
		if got := e.EffectiveVelocity(c.velocityKMS, c.deltaVMS); got != c.want {
			t.Errorf("EffectiveVelocity(%v, %v) = %v, want %v", c.velocityKMS, c.deltaVMS, got, c.want)
		}
	}
}

func TestKineticEnergyWithMass(t *testing.T) {
	e := newTestEngine()
	mass := 1e10
	metrics, err := e.KineticEnergy(&mass, 20, 0, nil, 0)
	if err != nil {
		t.Fatalf("KineticEnergy: %v", err)
	}
	wantJoules := 0.5 * 1e10 * 20000 * 20000
	if metrics.EnergyJoules != wantJoules {
		t.Errorf("joules = %g, want %g", metrics.EnergyJoules, wantJoules)
	}
	wantMT := wantJoules / 4.184e15
	if math.Abs(metrics.EnergyMT-wantMT) > 1e-9 {
		t.Errorf("megatons = %g, want %g", metrics.EnergyMT, wantMT)
	}
	if wantMT < 4.7e5 || wantMT > 4.9e5 {
		t.Errorf("megatons = %g, expected about 4.78e5", wantMT)
	}
}

func TestKineticEnergyDerivesMass(t *testing.T) {
	e := newTestEngine()
	diameter := 210.0
	metrics, err := e.KineticEnergy(nil, 21.5, 0, &diameter, 3000)
	if err != nil {
		t.Fatalf("KineticEnergy: %v", err)
	}
	if want := e.MassFromGeometry(210, 3000); metrics.MassKG != want {
		t.Errorf("derived mass = %g, want %g", metrics.MassKG, want)
	}
}

func TestKineticEnergyMissingMassAndDiameter(t *testing.T) {
	e := newTestEngine()
	if _, err := e.KineticEnergy(nil, 20, 0, nil, 3000); err != ErrMissingMass {
		t.Fatalf("expected ErrMissingMass, got %v", err)
	}
}

func TestCraterDiameter(t *testing.T) {
	e := newTestEngine()
	if got := e.CraterDiameter(0); got != 0 {
		t.Errorf("CraterDiameter(0) = %v, want 0", got)
	}
	if got := e.CraterDiameter(-5); got != 0 {
		t.Errorf("CraterDiameter(-5) = %v, want 0", got)
	}

	// Strictly increasing for positive energies.
	prev := 0.0
	for _, mt := range []float64{0.001, 0.1, 1, 10, 1000, 1e6} {
		got := e.CraterDiameter(mt)
		if got <= prev {
			t.Errorf("CraterDiameter not increasing at %v Mt: %v <= %v", mt, got, prev)
		}
		prev = got
	}
}

func TestSeismicMagnitudeNeverNegative(t *testing.T) {
	e := newTestEngine()
	for _, mt := range []float64{0, 1e-20, 1e-10, 0.001, 1, 1e6} {
		if got := e.SeismicMagnitude(mt); got < 0 {
			t.Errorf("SeismicMagnitude(%v) = %v, want >= 0", mt, got)
		}
	}
	if got := e.SeismicMagnitude(0); got != 0 {
		t.Errorf("SeismicMagnitude(0) = %v, want 0", got)
	}
}

func TestSeismicMagnitudeKnownValue(t *testing.T) {
	e := newTestEngine()
	// 1 Mt -> 0.67*log10(4.184e15) - 5.8
	want := 0.67*math.Log10(4.184e15) - 5.8
	if got := e.SeismicMagnitude(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("SeismicMagnitude(1) = %v, want %v", got, want)
	}
}
