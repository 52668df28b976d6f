package nasa

import (
	"math"
	"strconv"

	"astroshield/models"
)

// NEOPayload is the raw NEO lookup response. The NEO service serializes
// most numeric fields as strings, so they are parsed lazily through
// safeFloat during normalization.
type NEOPayload struct {
	ID                     string              `json:"id"`
	Name                   string              `json:"name"`
	Designation            string              `json:"designation"`
	NasaJplURL             string              `json:"nasa_jpl_url"`
	AbsoluteMagnitudeH     *float64            `json:"absolute_magnitude_h"`
	EstimatedDiameter      estimatedDiameter   `json:"estimated_diameter"`
	IsPotentiallyHazardous bool                `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData      []closeApproachData `json:"close_approach_data"`
	OrbitalData            orbitalData         `json:"orbital_data"`
}

// BrowseObject is one catalog object from the paged browse endpoint. The
// browse endpoint returns the same object shape as the lookup endpoint.
type BrowseObject = NEOPayload

type browseResponse struct {
	NearEarthObjects []BrowseObject `json:"near_earth_objects"`
}

type estimatedDiameter struct {
	Meters diameterBounds `json:"meters"`
}

type diameterBounds struct {
	Min *float64 `json:"estimated_diameter_min"`
	Max *float64 `json:"estimated_diameter_max"`
}

type closeApproachData struct {
	Date             string           `json:"close_approach_date"`
	OrbitingBody     string           `json:"orbiting_body"`
	RelativeVelocity relativeVelocity `json:"relative_velocity"`
	MissDistance     missDistance     `json:"miss_distance"`
}

type relativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
}

type missDistance struct {
	Kilometers string `json:"kilometers"`
}

type orbitalData struct {
	SemiMajorAxis           string     `json:"semi_major_axis"`
	Eccentricity            string     `json:"eccentricity"`
	Inclination             string     `json:"inclination"`
	AscendingNodeLongitude  string     `json:"ascending_node_longitude"`
	PerihelionArgument      string     `json:"perihelion_argument"`
	MeanAnomaly             string     `json:"mean_anomaly"`
	OrbitalPeriod           string     `json:"orbital_period"`
	OrbitClass              orbitClass `json:"orbit_class"`
}

type orbitClass struct {
	Type        string `json:"orbit_class_type"`
	Description string `json:"orbit_class_description"`
}

// ElementFields holds the parsed Keplerian elements with nil marking an
// absent or unparseable source value. The resolver guards each field
// against the builtin defaults.
type ElementFields struct {
	SemiMajorAxisAU           *float64
	Eccentricity              *float64
	InclinationDeg            *float64
	LongitudeAscendingNodeDeg *float64
	ArgumentPeriapsisDeg      *float64
	MeanAnomalyDeg            *float64
}

// NormalizedNEO is the lookup payload reshaped into simulation fields. Nil
// pointers mean the live source had no usable value for that scalar.
type NormalizedNEO struct {
	AsteroidID             string
	Name                   string
	Designation            string
	AbsoluteMagnitudeH     *float64
	DiameterM              *float64
	DiameterRangeM         models.DiameterRange
	VelocityKMS            *float64
	IsPotentiallyHazardous bool
	OrbitClass             *string
	CloseApproach          models.CloseApproach
	Elements               ElementFields
	ReferenceURL           *string
}

// Normalize reshapes a raw NEO payload into the simulation schema. The
// diameter point estimate is the midpoint of the estimated bounds; when the
// first close approach carries no relative velocity the orbital velocity is
// approximated from the semi-major axis and period.
func Normalize(payload *NEOPayload, auKilometers float64) NormalizedNEO {
	diameterMin := payload.EstimatedDiameter.Meters.Min
	diameterMax := payload.EstimatedDiameter.Meters.Max

	var diameterAvg *float64
	switch {
	case diameterMin != nil && diameterMax != nil:
		avg := (*diameterMin + *diameterMax) / 2.0
		diameterAvg = &avg
	case diameterMin != nil:
		diameterAvg = diameterMin
	case diameterMax != nil:
		diameterAvg = diameterMax
	}

	var first *closeApproachData
	if len(payload.CloseApproachData) > 0 {
		first = &payload.CloseApproachData[0]
	}

	var velocityKMS *float64
	if first != nil {
		velocityKMS = safeFloat(first.RelativeVelocity.KilometersPerSecond)
	}
	if velocityKMS == nil {
		velocityKMS = approximateOrbitalVelocity(payload.OrbitalData, auKilometers)
	}

	approach := models.CloseApproach{RelativeVelocityKMS: velocityKMS}
	if first != nil {
		if first.Date != "" {
			approach.Date = strPtr(first.Date)
		}
		if first.OrbitingBody != "" {
			approach.OrbitingBody = strPtr(first.OrbitingBody)
		}
		approach.MissDistanceKM = safeFloat(first.MissDistance.Kilometers)
	}

	designation := payload.Designation
	if designation == "" {
		designation = payload.Name
	}

	var orbitClass *string
	if payload.OrbitalData.OrbitClass.Description != "" {
		orbitClass = strPtr(payload.OrbitalData.OrbitClass.Description)
	}

	var refURL *string
	if payload.NasaJplURL != "" {
		refURL = strPtr(payload.NasaJplURL)
	}

	return NormalizedNEO{
		AsteroidID:             payload.ID,
		Name:                   payload.Name,
		Designation:            designation,
		AbsoluteMagnitudeH:     payload.AbsoluteMagnitudeH,
		DiameterM:              diameterAvg,
		DiameterRangeM:         models.DiameterRange{MinM: diameterMin, MaxM: diameterMax},
		VelocityKMS:            velocityKMS,
		IsPotentiallyHazardous: payload.IsPotentiallyHazardous,
		OrbitClass:             orbitClass,
		CloseApproach:          approach,
		Elements:               parseElements(payload.OrbitalData),
		ReferenceURL:           refURL,
	}
}

// ToCatalogEntry reshapes one browse object into a catalog listing record.
func ToCatalogEntry(payload *BrowseObject) models.CatalogEntry {
	var first *closeApproachData
	if len(payload.CloseApproachData) > 0 {
		first = &payload.CloseApproachData[0]
	}

	var approachDate, orbitClass *string
	var relVelocity *float64
	if first != nil {
		if first.Date != "" {
			approachDate = strPtr(first.Date)
		}
		relVelocity = safeFloat(first.RelativeVelocity.KilometersPerSecond)
	}
	if payload.OrbitalData.OrbitClass.Type != "" {
		orbitClass = strPtr(payload.OrbitalData.OrbitClass.Type)
	}

	designation := payload.Designation
	if designation == "" {
		designation = payload.Name
	}

	return models.CatalogEntry{
		AsteroidID:          payload.ID,
		FriendlyID:          payload.ID,
		Name:                payload.Name,
		Designation:         designation,
		AbsoluteMagnitudeH:  payload.AbsoluteMagnitudeH,
		DiameterMinM:        payload.EstimatedDiameter.Meters.Min,
		DiameterMaxM:        payload.EstimatedDiameter.Meters.Max,
		RelativeVelocityKMS: relVelocity,
		CloseApproachDate:   approachDate,
		IsPotentiallyHazard: payload.IsPotentiallyHazardous,
		OrbitClass:          orbitClass,
	}
}

func parseElements(orbit orbitalData) ElementFields {
	return ElementFields{
		SemiMajorAxisAU:           safeFloat(orbit.SemiMajorAxis),
		Eccentricity:              safeFloat(orbit.Eccentricity),
		InclinationDeg:            safeFloat(orbit.Inclination),
		LongitudeAscendingNodeDeg: safeFloat(orbit.AscendingNodeLongitude),
		ArgumentPeriapsisDeg:      safeFloat(orbit.PerihelionArgument),
		MeanAnomalyDeg:            safeFloat(orbit.MeanAnomaly),
	}
}

// approximateOrbitalVelocity derives v = 2*pi*a / T when the payload has a
// semi-major axis and period but no close-approach relative velocity.
func approximateOrbitalVelocity(orbit orbitalData, auKilometers float64) *float64 {
	a := safeFloat(orbit.SemiMajorAxis)
	period := safeFloat(orbit.OrbitalPeriod)
	if a == nil || period == nil || *period == 0 {
		return nil
	}
	circumferenceKM := 2 * math.Pi * *a * auKilometers
	seconds := *period * 24 * 3600
	v := circumferenceKM / seconds
	return &v
}

// safeFloat parses a string quantity, returning nil for absent, malformed,
// or NaN values.
func safeFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}

func strPtr(s string) *string {
	return &s
}
