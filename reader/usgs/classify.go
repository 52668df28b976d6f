package usgs

import (
	"strings"

	"astroshield/models"
)

// Keyword tiers for seismic-risk classification, checked in order of
// severity against the joined lower-cased region names.
var (
	veryHighKeywords = []string{"subduction", "transform", "rift", "trenches"}
	highKeywords     = []string{"arc", "plate boundary", "fault", "ridge"}
	lowKeywords      = []string{"stable", "craton", "platform"}

	coastalKeywords = []string{"coastal", "pacific", "ocean", "gulf", "sea"}
	inlandKeywords  = []string{"inland", "continental interior"}
)

func classifySeismicRisk(regions []string) string {
	if len(regions) == 0 {
		return models.RiskUnknown
	}
	joined := joinLower(regions)
	switch {
	case containsAny(joined, veryHighKeywords):
		return models.RiskVeryHigh
	case containsAny(joined, highKeywords):
		return models.RiskHigh
	case containsAny(joined, lowKeywords):
		return models.RiskLow
	}
	return models.RiskModerate
}

// estimateCoastalZone infers coastal proximity from region naming and
// elevation. Returns nil when elevation is unknown, since elevation is the
// only hard signal available.
func estimateCoastalZone(regions []string, elevation *float64) *bool {
	if elevation == nil {
		return nil
	}
	if *elevation > 300 {
		return boolPtr(false)
	}
	if len(regions) == 0 {
		return boolPtr(*elevation < 75)
	}
	joined := joinLower(regions)
	if containsAny(joined, coastalKeywords) {
		return boolPtr(true)
	}
	if containsAny(joined, inlandKeywords) {
		return boolPtr(false)
	}
	return boolPtr(*elevation < 50)
}

func extractRegionNames(payload GeoservePayload) []string {
	var names []string
	for _, group := range [][]regionEntry{
		payload.Regions.Tectonic,
		payload.Regions.States,
		payload.Regions.Countries,
	} {
		for _, entry := range group {
			if entry.Name != "" {
				names = append(names, entry.Name)
			}
		}
	}
	return names
}

func joinLower(names []string) string {
	return strings.ToLower(strings.Join(names, " "))
}

func containsAny(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool {
	return &b
}
