package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	appconfig "astroshield/config"
	"astroshield/logger"
	"astroshield/models"
)

// noDataElevation is the sentinel the elevation service returns for points
// outside its coverage.
const noDataElevation = "-1000000"

// APIError marks a failed USGS request. Report assembly swallows these and
// degrades the affected fields; the health probe surfaces them.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("usgs %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client queries the public USGS elevation and geoserve services for
// impact-site context.
type Client struct {
	cfg        appconfig.USGSSourceConfig
	httpClient *http.Client
	log        *logger.Log
}

func NewClient(cfg appconfig.USGSSourceConfig) *Client {
	client := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: logger.GetLogger(),
	}

	client.log.WithComponent("usgs_reader").WithFields(logger.Fields{
		"elevation_url": cfg.ElevationURL,
		"geoserve_url":  cfg.GeoserveURL,
		"timeout":       cfg.Timeout,
	}).Info("usgs client initialized")

	return client
}

// BuildEnvironmentReport assembles the site report for a coordinate.
// Either upstream failing degrades its fields to nil rather than failing
// the report; both failing yields a report with no signal, which the
// resolver replaces with the builtin estimate.
func (c *Client) BuildEnvironmentReport(ctx context.Context, lat, lon float64) models.EnvironmentReport {
	log := c.log.WithComponent("usgs_reader")

	elevation, err := c.FetchElevation(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Warn("elevation lookup failed")
		elevation = nil
	}

	geoserve, err := c.FetchGeoserve(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Warn("geoserve lookup failed")
		geoserve = GeoservePayload{}
	}

	regions := extractRegionNames(geoserve)

	var summary *string
	if geoserve.TectonicSummary.Text != "" {
		text := geoserve.TectonicSummary.Text
		summary = &text
	}

	return models.EnvironmentReport{
		ElevationM:      elevation,
		IsCoastalZone:   estimateCoastalZone(regions, elevation),
		SeismicZoneRisk: classifySeismicRisk(regions),
		TectonicSummary: summary,
	}
}

type elevationResponse struct {
	Service struct {
		Query struct {
			Elevation flexibleNumber `json:"Elevation"`
		} `json:"ElevationQuery"`
	} `json:"USGS_Elevation_Point_Query_Service"`
}

// flexibleNumber tolerates the elevation service serializing values either
// as numbers or as quoted strings (the no-data sentinel is a string).
type flexibleNumber string

func (f *flexibleNumber) UnmarshalJSON(b []byte) error {
	*f = flexibleNumber(strings.Trim(string(b), `"`))
	return nil
}

// FetchElevation returns the point elevation in meters, or nil when the
// service reports no data for the coordinate.
func (c *Client) FetchElevation(ctx context.Context, lat, lon float64) (*float64, error) {
	params := url.Values{}
	params.Set("y", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("x", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", "Meters")
	params.Set("output", "json")

	var payload elevationResponse
	if err := c.requestJSON(ctx, "elevation", c.cfg.ElevationURL, params, &payload); err != nil {
		return nil, err
	}

	raw := string(payload.Service.Query.Elevation)
	if raw == "" || raw == "null" || raw == noDataElevation {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

// GeoservePayload is the subset of the geoserve regions response used for
// seismic and coastal classification.
type GeoservePayload struct {
	TectonicSummary struct {
		Text string `json:"text"`
	} `json:"tectonicSummary"`
	Regions struct {
		Tectonic  []regionEntry `json:"tectonic"`
		States    []regionEntry `json:"states"`
		Countries []regionEntry `json:"countries"`
	} `json:"regions"`
}

type regionEntry struct {
	Name string `json:"name"`
}

type geoserveResponse struct {
	Geoserve GeoservePayload `json:"geoserve"`
}

// FetchGeoserve returns the tectonic-region payload for a coordinate.
func (c *Client) FetchGeoserve(ctx context.Context, lat, lon float64) (GeoservePayload, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))

	var payload geoserveResponse
	if err := c.requestJSON(ctx, "geoserve", c.cfg.GeoserveURL, params, &payload); err != nil {
		return GeoservePayload{}, err
	}
	return payload.Geoserve, nil
}

func (c *Client) requestJSON(ctx context.Context, op, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, Err: err}
	}
	return nil
}
