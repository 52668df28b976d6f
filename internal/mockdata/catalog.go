// Package mockdata holds the deterministic builtin datasets the resolvers
// substitute when live sources fail or return unusable fields. Every value
// is fixed so simulations stay reproducible offline.
package mockdata

import "astroshield/models"

// DefaultAsteroidID is the friendly id served when a request names no
// asteroid or names one neither source recognizes.
const DefaultAsteroidID = "Impactor-2025"

// aliases maps friendly scenario ids to the catalog ids the live NEO
// service understands.
var aliases = map[string]string{
	"Impactor-2025": "3542519",
	"Didymos-Alt":   "2099942",
	"Apophis":       "99942",
	"Bennu":         "101955",
}

// ResolveAlias maps a friendly id to its live catalog id, passing unknown
// ids through unchanged.
func ResolveAlias(friendlyID string) string {
	if resolved, ok := aliases[friendlyID]; ok {
		return resolved
	}
	return friendlyID
}

// Object is one fully specified builtin asteroid.
type Object struct {
	FriendlyID  string
	AsteroidID  string
	Name        string
	Designation string
	DiameterM   float64
	VelocityKMS float64
	DensityKGM3 float64
	Hazardous   bool
	OrbitClass  string
	Elements    models.OrbitalElements
}

// objects is ordered so catalog snapshots are deterministic. The first
// entry is the process default.
var objects = []Object{
	{
		FriendlyID:  "Impactor-2025",
		AsteroidID:  "3542519",
		Name:        "Impactor-2025",
		Designation: "Impactor-2025",
		DiameterM:   210.0,
		VelocityKMS: 21.5,
		DensityKGM3: 3000.0,
		Hazardous:   true,
		OrbitClass:  "Apollo",
		Elements: models.OrbitalElements{
			SemiMajorAxisAU:           1.12,
			Eccentricity:              0.23,
			InclinationDeg:            6.5,
			LongitudeAscendingNodeDeg: 80.2,
			ArgumentPeriapsisDeg:      130.4,
			MeanAnomalyDeg:            45.0,
		},
	},
	{
		FriendlyID:  "Didymos-Alt",
		AsteroidID:  "2099942",
		Name:        "Didymos-Alt",
		Designation: "Didymos-Alt",
		DiameterM:   160.0,
		VelocityKMS: 18.0,
		DensityKGM3: 2900.0,
		Hazardous:   false,
		OrbitClass:  "Apollo",
		Elements: models.OrbitalElements{
			SemiMajorAxisAU:           1.05,
			Eccentricity:              0.14,
			InclinationDeg:            3.1,
			LongitudeAscendingNodeDeg: 110.0,
			ArgumentPeriapsisDeg:      318.0,
			MeanAnomalyDeg:            260.0,
		},
	},
}

var objectIndex = buildIndex()

func buildIndex() map[string]int {
	index := make(map[string]int, len(objects))
	for i, obj := range objects {
		index[obj.FriendlyID] = i
	}
	return index
}

// Defaults are the per-scalar substitutes used when a live record is
// missing or carries a NaN for one field. They mirror the default object.
type Defaults struct {
	DiameterM   float64
	VelocityKMS float64
	DensityKGM3 float64
	Elements    models.OrbitalElements
}

func DefaultValues() Defaults {
	def := objects[0]
	return Defaults{
		DiameterM:   def.DiameterM,
		VelocityKMS: def.VelocityKMS,
		DensityKGM3: def.DensityKGM3,
		Elements:    def.Elements,
	}
}

// Lookup returns the builtin object for a friendly id, or the default
// object when the id is not in the builtin catalog.
func Lookup(friendlyID string) Object {
	if i, ok := objectIndex[friendlyID]; ok {
		return objects[i]
	}
	return objects[0]
}

// NEOData expands a builtin object into the canonical record shape.
func NEOData(friendlyID string) models.NEOData {
	obj := Lookup(friendlyID)
	orbitClass := obj.OrbitClass
	return models.NEOData{
		Source:              models.SourceFallback,
		AsteroidID:          obj.AsteroidID,
		FriendlyID:          friendlyID,
		Name:                obj.Name,
		Designation:         obj.Designation,
		DiameterM:           obj.DiameterM,
		DiameterRangeM:      models.DiameterRange{MinM: &obj.DiameterM, MaxM: &obj.DiameterM},
		VelocityKMS:         obj.VelocityKMS,
		DensityKGM3:         obj.DensityKGM3,
		IsPotentiallyHazard: obj.Hazardous,
		OrbitClass:          &orbitClass,
		OrbitalElements:     obj.Elements,
	}
}

// Snapshot lists builtin catalog entries with the point diameter widened
// to a +/-10% display range.
func Snapshot(limit int) []models.CatalogEntry {
	if limit <= 0 || limit > len(objects) {
		limit = len(objects)
	}
	entries := make([]models.CatalogEntry, 0, limit)
	for _, obj := range objects[:limit] {
		minM := obj.DiameterM * 0.9
		maxM := obj.DiameterM * 1.1
		velocity := obj.VelocityKMS
		orbitClass := obj.OrbitClass
		entries = append(entries, models.CatalogEntry{
			AsteroidID:          obj.AsteroidID,
			FriendlyID:          obj.FriendlyID,
			Name:                obj.Name,
			Designation:         obj.Designation,
			DiameterMinM:        &minM,
			DiameterMaxM:        &maxM,
			RelativeVelocityKMS: &velocity,
			IsPotentiallyHazard: obj.Hazardous,
			OrbitClass:          &orbitClass,
		})
	}
	return entries
}
