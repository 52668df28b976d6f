package config

import (
	"os"
	"testing"
)

// writeTempConfig creates a minimal configuration file required for LoadConfig
// and returns its path.
func writeTempConfig(t *testing.T) string {
	t.Helper()
	content := `astroshield:
  name: "TestApp"
  version: "1.0"
simulation:
  sample_points: 60
source:
  nasa:
    enabled: true
    base_url: "https://example.test/neo/rest/v1"
    timeout: 5s
  usgs:
    enabled: false
export:
  s3:
    enabled: false
`
	f, err := os.CreateTemp("", "cfg-*.yml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return f.Name()
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t)
	defer os.Remove(path)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Astroshield.Name != "TestApp" {
		t.Errorf("unexpected name: %s", cfg.Astroshield.Name)
	}
	if cfg.Simulation.SamplePoints != 60 {
		t.Errorf("unexpected sample points: %d", cfg.Simulation.SamplePoints)
	}
	if cfg.Simulation.DefaultAsteroidID != "Impactor-2025" {
		t.Errorf("unexpected default asteroid: %s", cfg.Simulation.DefaultAsteroidID)
	}
	if cfg.Environment.TsunamiElevationThresholdM != 75 {
		t.Errorf("unexpected tsunami threshold: %v", cfg.Environment.TsunamiElevationThresholdM)
	}
}

func TestLoadConfigAPIKeyOverride(t *testing.T) {
	path := writeTempConfig(t)
	defer os.Remove(path)

	t.Setenv("NASA_API_KEY", "live-key")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Source.NASA.APIKey != "live-key" {
		t.Errorf("expected env override, got %q", cfg.Source.NASA.APIKey)
	}
}

func TestValidateConfigRejectsBadCoordinates(t *testing.T) {
	cfg := &Config{
		Astroshield: AstroshieldConfig{Name: "x", Version: "1"},
		Simulation:  SimulationConfig{SamplePoints: 60, DefaultLatitude: 120},
		Environment: EnvironmentConfig{TsunamiElevationThresholdM: 75},
	}
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("expected error for latitude out of range")
	}
}

func TestIsValidS3Bucket(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"valid-bucket", true},
		{"Invalid", false},
		{"ab", false},
		{"my..bucket", false},
	}
	for _, c := range cases {
		if got := isValidS3Bucket(c.name); got != c.valid {
			t.Errorf("isValidS3Bucket(%q) = %v, want %v", c.name, got, c.valid)
		}
	}
}
