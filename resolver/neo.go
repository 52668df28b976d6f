// Package resolver composes the live data sources, the builtin fallback
// catalog, and the physics engine into the simulation operations the API
// layer serves. Live-source failures degrade to the builtin datasets and
// are never surfaced as request failures.
package resolver

import (
	"context"
	"math"

	"astroshield/internal/mockdata"
	"astroshield/logger"
	"astroshield/models"
	"astroshield/reader/nasa"
)

// Catalog listing limits enforced on every request.
const (
	minCatalogLimit = 1
	maxCatalogLimit = 50
)

// NEOSource is the live near-Earth-object catalog consumed by the
// resolver. Satisfied by the NASA NEO client.
type NEOSource interface {
	FetchNEO(ctx context.Context, asteroidID string) (*nasa.NEOPayload, error)
	Browse(ctx context.Context, page, size int) ([]nasa.BrowseObject, error)
}

// NEOResolver resolves friendly asteroid identifiers to fully populated
// reference records, preferring the live source and substituting the
// builtin catalog on any failure. A nil source means live lookups are
// disabled and every resolution is served from the builtin catalog.
type NEOResolver struct {
	source       NEOSource
	auKilometers float64
	defaultID    string
	log          *logger.Log
}

func NewNEOResolver(source NEOSource, auKilometers float64, defaultID string) *NEOResolver {
	if defaultID == "" {
		defaultID = mockdata.DefaultAsteroidID
	}
	return &NEOResolver{
		source:       source,
		auKilometers: auKilometers,
		defaultID:    defaultID,
		log:          logger.GetLogger(),
	}
}

// Resolve returns the canonical record for a friendly identifier. The
// result is always fully populated: live lookups have every missing or NaN
// scalar replaced by the builtin default for that field, and any live
// failure substitutes the builtin object wholesale. Never returns an error.
func (r *NEOResolver) Resolve(ctx context.Context, friendlyID string) models.NEOData {
	if friendlyID == "" {
		friendlyID = r.defaultID
	}
	resolvedID := mockdata.ResolveAlias(friendlyID)

	if r.source == nil {
		return mockdata.NEOData(friendlyID)
	}

	payload, err := r.source.FetchNEO(ctx, resolvedID)
	if err != nil {
		r.log.WithComponent("neo_resolver").WithError(err).WithFields(logger.Fields{
			"friendly_id": friendlyID,
			"resolved_id": resolvedID,
		}).Warn("live lookup failed, using builtin catalog")
		logger.IncrementNasaFallback()
		return mockdata.NEOData(friendlyID)
	}

	return r.fromLive(payload, friendlyID, resolvedID)
}

// fromLive reshapes a live payload, guarding each physical scalar against
// the builtin defaults so the record is usable even when the source omits
// fields.
func (r *NEOResolver) fromLive(payload *nasa.NEOPayload, friendlyID, resolvedID string) models.NEOData {
	norm := nasa.Normalize(payload, r.auKilometers)
	defaults := mockdata.DefaultValues()

	asteroidID := norm.AsteroidID
	if asteroidID == "" {
		asteroidID = resolvedID
	}
	name := norm.Name
	if name == "" {
		name = friendlyID
	}
	designation := norm.Designation
	if designation == "" {
		designation = friendlyID
	}

	return models.NEOData{
		Source:              models.SourceLive,
		AsteroidID:          asteroidID,
		FriendlyID:          friendlyID,
		Name:                name,
		Designation:         designation,
		AbsoluteMagnitudeH:  norm.AbsoluteMagnitudeH,
		DiameterM:           ensureQuantity(norm.DiameterM, defaults.DiameterM),
		DiameterRangeM:      norm.DiameterRangeM,
		VelocityKMS:         ensureQuantity(norm.VelocityKMS, defaults.VelocityKMS),
		DensityKGM3:         defaults.DensityKGM3,
		IsPotentiallyHazard: norm.IsPotentiallyHazardous,
		OrbitClass:          norm.OrbitClass,
		CloseApproach:       norm.CloseApproach,
		OrbitalElements:     elementsFromLive(norm.Elements, defaults.Elements),
		ReferenceURL:        norm.ReferenceURL,
	}
}

// ListCatalog returns an ordered catalog listing. A live page is preferred;
// an empty or failed live result substitutes the builtin snapshot, and the
// process-default object is always present as the first entry.
func (r *NEOResolver) ListCatalog(ctx context.Context, limit int) []models.CatalogEntry {
	if limit < minCatalogLimit {
		limit = minCatalogLimit
	}
	if limit > maxCatalogLimit {
		limit = maxCatalogLimit
	}

	var entries []models.CatalogEntry
	if r.source != nil {
		objects, err := r.source.Browse(ctx, 0, limit)
		if err != nil {
			r.log.WithComponent("neo_resolver").WithError(err).Warn("live catalog fetch failed, using builtin snapshot")
			logger.IncrementNasaFallback()
		}
		for i := range objects {
			entries = append(entries, nasa.ToCatalogEntry(&objects[i]))
		}
	}
	if len(entries) == 0 {
		entries = mockdata.Snapshot(limit)
	}

	defaultEntries := mockdata.Snapshot(1)
	if len(defaultEntries) > 0 && !containsFriendlyID(entries, defaultEntries[0].FriendlyID) {
		entries = append([]models.CatalogEntry{defaultEntries[0]}, entries...)
	}
	return entries
}

func containsFriendlyID(entries []models.CatalogEntry, friendlyID string) bool {
	for _, entry := range entries {
		if entry.FriendlyID == friendlyID {
			return true
		}
	}
	return false
}

func elementsFromLive(live nasa.ElementFields, defaults models.OrbitalElements) models.OrbitalElements {
	return models.OrbitalElements{
		SemiMajorAxisAU:           ensureQuantity(live.SemiMajorAxisAU, defaults.SemiMajorAxisAU),
		Eccentricity:              ensureQuantity(live.Eccentricity, defaults.Eccentricity),
		InclinationDeg:            ensureQuantity(live.InclinationDeg, defaults.InclinationDeg),
		LongitudeAscendingNodeDeg: ensureQuantity(live.LongitudeAscendingNodeDeg, defaults.LongitudeAscendingNodeDeg),
		ArgumentPeriapsisDeg:      ensureQuantity(live.ArgumentPeriapsisDeg, defaults.ArgumentPeriapsisDeg),
		MeanAnomalyDeg:            ensureQuantity(live.MeanAnomalyDeg, defaults.MeanAnomalyDeg),
	}
}

// ensureQuantity substitutes the fallback for absent or NaN values.
func ensureQuantity(value *float64, fallback float64) float64 {
	if value == nil || math.IsNaN(*value) {
		return fallback
	}
	return *value
}
