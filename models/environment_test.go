package models

import "testing"

func TestEnvironmentReportHasSignal(t *testing.T) {
	elevation := 12.0
	coastal := false
	summary := "stable craton"

	cases := []struct {
		name   string
		report EnvironmentReport
		want   bool
	}{
		{"empty", EnvironmentReport{SeismicZoneRisk: RiskUnknown}, false},
		{"elevation only", EnvironmentReport{ElevationM: &elevation}, true},
		{"coastal only", EnvironmentReport{IsCoastalZone: &coastal}, true},
		{"summary alone is not a signal", EnvironmentReport{TectonicSummary: &summary}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.report.HasSignal(); got != c.want {
				t.Errorf("HasSignal() = %v, want %v", got, c.want)
			}
		})
	}
}
