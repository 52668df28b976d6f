package writer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"astroshield/models"
)

const valuePlaceholder = "n/a"

// renderMarkdown builds the mission-briefing document for one simulation:
// a snapshot section, an impact-metrics table, and the environment and
// orbit summary.
func renderMarkdown(sim models.SimulationResponse, generatedAt time.Time) []byte {
	neo := sim.NEOReference
	var b strings.Builder

	name := neo.Name
	if name == "" {
		name = neo.FriendlyID
	}
	fmt.Fprintf(&b, "# AstroShield Mission Briefing: %s\n\n", name)
	fmt.Fprintf(&b, "Generated %s  \n", generatedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "Asteroid ID: %s  \n", sim.Inputs.AsteroidID)
	fmt.Fprintf(&b, "Simulation: %s\n\n", sim.SimulationID)

	b.WriteString("## Snapshot\n\n")
	fmt.Fprintf(&b, "- Source: %s\n", titleCase(neo.Source))
	fmt.Fprintf(&b, "- Diameter: %s\n", formatRange(neo.DiameterRangeM, "m", formatNumber(&neo.DiameterM, "m")))
	velocityKMS := sim.Energy.EffectiveVelocityMS / 1000.0
	fmt.Fprintf(&b, "- Velocity: %s\n", formatNumber(&velocityKMS, "km/s"))
	fmt.Fprintf(&b, "- Impact energy: %s\n", formatNumber(&sim.Energy.EnergyMT, "Mt TNT"))
	fmt.Fprintf(&b, "- Crater size: %s\n", formatNumber(&sim.ImpactEffects.CraterDiameterKM, "km"))
	fmt.Fprintf(&b, "- Seismic magnitude: %s\n\n", formatNumber(&sim.ImpactEffects.SeismicMagnitude, ""))

	b.WriteString("## Impact Metrics\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("| --- | --- |\n")
	fmt.Fprintf(&b, "| Mass | %s |\n", formatNumber(&sim.Energy.MassKG, "kg"))
	fmt.Fprintf(&b, "| Kinetic Energy | %s |\n", formatNumber(&sim.Energy.EnergyJoules, "J"))
	fmt.Fprintf(&b, "| Crater Diameter | %s |\n", formatNumber(&sim.ImpactEffects.CraterDiameterKM, "km"))
	fmt.Fprintf(&b, "| Seismic Magnitude | %s |\n", formatNumber(&sim.ImpactEffects.SeismicMagnitude, ""))
	tsunami := sim.Environment.TsunamiRisk
	fmt.Fprintf(&b, "| Tsunami Risk | %s |\n\n", formatBoolean(&tsunami))

	b.WriteString("## Environment & Orbit\n\n")
	fmt.Fprintf(&b, "- Impact coordinates: %.2f, %.2f\n", sim.Inputs.ImpactLat, sim.Inputs.ImpactLon)
	fmt.Fprintf(&b, "- Elevation: %s\n", formatNumber(sim.Environment.ElevationM, "m"))
	fmt.Fprintf(&b, "- Coastal zone: %s\n", formatBoolean(sim.Environment.IsCoastalZone))
	risk := sim.Environment.SeismicZoneRisk
	if risk == "" {
		risk = models.RiskUnknown
	}
	fmt.Fprintf(&b, "- Seismic risk: %s\n", risk)
	fmt.Fprintf(&b, "- Baseline MOID: %s\n", formatNumber(&sim.OrbitalSolution.BaselineMOIDKM, "km"))
	fmt.Fprintf(&b, "- Deflected MOID: %s\n", formatNumber(&sim.OrbitalSolution.DeflectedMOIDKM, "km"))
	fmt.Fprintf(&b, "- MOID change: %s\n", formatNumber(&sim.OrbitalSolution.MOIDChangeKM, "km"))
	hazard := sim.OrbitalSolution.WithinHazardDistance
	fmt.Fprintf(&b, "- Within hazard distance: %s\n", formatBoolean(&hazard))
	if sim.Environment.TectonicSummary != nil {
		fmt.Fprintf(&b, "- Tectonic summary: %s\n", *sim.Environment.TectonicSummary)
	}

	return []byte(b.String())
}

// formatNumber renders a quantity with B/M/k magnitude scaling and two
// decimal places, or the placeholder for absent values.
func formatNumber(value *float64, units string) string {
	if value == nil || math.IsNaN(*value) {
		return valuePlaceholder
	}
	number := *value
	var formatted string
	switch {
	case math.Abs(number) >= 1e9:
		formatted = fmt.Sprintf("%.2fB", number/1e9)
	case math.Abs(number) >= 1e6:
		formatted = fmt.Sprintf("%.2fM", number/1e6)
	case math.Abs(number) >= 1e3:
		formatted = fmt.Sprintf("%.2fk", number/1e3)
	default:
		formatted = fmt.Sprintf("%.2f", number)
	}
	if units != "" {
		return formatted + " " + units
	}
	return formatted
}

func formatRange(r models.DiameterRange, units, fallback string) string {
	if r.MinM == nil && r.MaxM == nil {
		return fallback
	}
	lower := valuePlaceholder
	if r.MinM != nil {
		lower = formatNumber(r.MinM, units)
	}
	upper := valuePlaceholder
	if r.MaxM != nil {
		upper = formatNumber(r.MaxM, units)
	}
	if lower == upper {
		return lower
	}
	return lower + " to " + upper
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatBoolean(value *bool) string {
	if value == nil {
		return "Unknown"
	}
	if *value {
		return "Yes"
	}
	return "No"
}
