package nasa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	appconfig "astroshield/config"
)

const lookupBody = `{
	"id": "3542519",
	"name": "(2010 PK9)",
	"designation": "2010 PK9",
	"nasa_jpl_url": "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=3542519",
	"absolute_magnitude_h": 21.87,
	"estimated_diameter": {"meters": {"estimated_diameter_min": 100.0, "estimated_diameter_max": 230.0}},
	"is_potentially_hazardous_asteroid": true,
	"close_approach_data": [{
		"close_approach_date": "2025-07-22",
		"orbiting_body": "Earth",
		"relative_velocity": {"kilometers_per_second": "18.4"},
		"miss_distance": {"kilometers": "4326514.8"}
	}],
	"orbital_data": {
		"semi_major_axis": "1.12",
		"eccentricity": "0.23",
		"inclination": "6.5",
		"ascending_node_longitude": "80.2",
		"perihelion_argument": "130.4",
		"mean_anomaly": "45.0",
		"orbital_period": "432.1",
		"orbit_class": {"orbit_class_type": "APO", "orbit_class_description": "Apollo"}
	}
}`

func minimalSourceConfig(baseURL string) appconfig.NASASourceConfig {
	return appconfig.NASASourceConfig{
		Enabled: true,
		APIKey:  "TEST_KEY",
		BaseURL: baseURL,
		Timeout: time.Second,
	}
}

func TestFetchNEOCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if got := r.URL.Query().Get("api_key"); got != "TEST_KEY" {
			t.Errorf("missing api key, got %q", got)
		}
		w.Write([]byte(lookupBody))
	}))
	defer srv.Close()

	client := NewClient(minimalSourceConfig(srv.URL))
	ctx := context.Background()

	payload, err := client.FetchNEO(ctx, "3542519")
	if err != nil {
		t.Fatalf("FetchNEO: %v", err)
	}
	if payload.ID != "3542519" || !payload.IsPotentiallyHazardous {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	if _, err := client.FetchNEO(ctx, "3542519"); err != nil {
		t.Fatalf("cached FetchNEO: %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("expected 1 upstream hit, got %d", hits)
	}
}

func TestFetchNEOStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(minimalSourceConfig(srv.URL))
	_, err := client.FetchNEO(context.Background(), "99942")
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
}

func TestFetchNEOMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": `))
	}))
	defer srv.Close()

	client := NewClient(minimalSourceConfig(srv.URL))
	var apiErr *APIError
	if _, err := client.FetchNEO(context.Background(), "99942"); !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError for malformed payload, got %v", err)
	}
}

func TestBrowseCachesByPage(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"near_earth_objects": [` + lookupBody + `]}`))
	}))
	defer srv.Close()

	client := NewClient(minimalSourceConfig(srv.URL))
	ctx := context.Background()

	objects, err := client.Browse(ctx, 0, 12)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(objects) != 1 || objects[0].Name != "(2010 PK9)" {
		t.Fatalf("unexpected objects: %+v", objects)
	}

	if _, err := client.Browse(ctx, 0, 12); err != nil {
		t.Fatalf("cached Browse: %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("expected 1 upstream hit for cached page, got %d", hits)
	}

	if _, err := client.Browse(ctx, 1, 12); err != nil {
		t.Fatalf("second page Browse: %v", err)
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Errorf("expected 2 upstream hits after new page, got %d", hits)
	}
}

func TestNormalize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(lookupBody))
	}))
	defer srv.Close()

	client := NewClient(minimalSourceConfig(srv.URL))
	payload, err := client.FetchNEO(context.Background(), "3542519")
	if err != nil {
		t.Fatalf("FetchNEO: %v", err)
	}

	norm := Normalize(payload, 149597870.7)
	if norm.DiameterM == nil || *norm.DiameterM != 165.0 {
		t.Errorf("diameter midpoint = %v, want 165", norm.DiameterM)
	}
	if norm.VelocityKMS == nil || *norm.VelocityKMS != 18.4 {
		t.Errorf("velocity = %v, want 18.4", norm.VelocityKMS)
	}
	if norm.Elements.Eccentricity == nil || *norm.Elements.Eccentricity != 0.23 {
		t.Errorf("eccentricity = %v, want 0.23", norm.Elements.Eccentricity)
	}
	if norm.OrbitClass == nil || *norm.OrbitClass != "Apollo" {
		t.Errorf("orbit class = %v, want Apollo", norm.OrbitClass)
	}
	if norm.CloseApproach.MissDistanceKM == nil || *norm.CloseApproach.MissDistanceKM != 4326514.8 {
		t.Errorf("miss distance = %v", norm.CloseApproach.MissDistanceKM)
	}
}

func TestNormalizeVelocityFallback(t *testing.T) {
	payload := &NEOPayload{
		ID: "x",
		OrbitalData: orbitalData{
			SemiMajorAxis: "1.0",
			OrbitalPeriod: "365.25",
		},
	}
	norm := Normalize(payload, 149597870.7)
	if norm.VelocityKMS == nil {
		t.Fatal("expected velocity approximated from orbit")
	}
	// Roughly Earth's orbital speed.
	if *norm.VelocityKMS < 29 || *norm.VelocityKMS > 31 {
		t.Errorf("approximated velocity = %v, want about 29.8", *norm.VelocityKMS)
	}
}

func TestSafeFloat(t *testing.T) {
	for _, in := range []string{"", "abc", "NaN"} {
		if got := safeFloat(in); got != nil {
			t.Errorf("safeFloat(%q) = %v, want nil", in, *got)
		}
	}
	if got := safeFloat("1.25"); got == nil || *got != 1.25 {
		t.Errorf("safeFloat(1.25) = %v", got)
	}
}
