// Package taxonomy maps user-facing venue categories to the places provider's
// type vocabulary.
package taxonomy

// FallbackType is the generic provider type used for unknown categories.
const FallbackType = "establishment"

// categoryTypes maps each supported category label to an ordered list of
// provider type tokens. Resolution always picks the first token.
var categoryTypes = map[string][]string{
	"dining":        {"restaurant", "food", "meal_takeaway", "cafe", "bakery", "bar"},
	"entertainment": {"movie_theater", "amusement_park", "night_club", "casino", "bowling_alley"},
	"sports":        {"gym", "spa", "stadium", "golf_course"},
	"adventure":     {"tourist_attraction", "park", "zoo", "aquarium", "museum"},
	"relaxation":    {"spa", "beauty_salon", "park"},
	"devotion":      {"church", "hindu_temple", "mosque", "synagogue", "place_of_worship"},
	"amusement":     {"amusement_park", "arcade", "bowling_alley"},
	"games":         {"bowling_alley", "arcade", "casino"},
}

// Resolve returns the provider type token for a category label. Unknown
// labels resolve to FallbackType; the function never fails.
func Resolve(category string) string {
	if types, ok := categoryTypes[category]; ok && len(types) > 0 {
		return types[0]
	}
	return FallbackType
}

// Tokens returns the full ordered token list for a category label, or nil for
// unknown labels.
func Tokens(category string) []string {
	types, ok := categoryTypes[category]
	if !ok {
		return nil
	}
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// Categories returns the supported category labels.
func Categories() []string {
	labels := make([]string, 0, len(categoryTypes))
	for label := range categoryTypes {
		labels = append(labels, label)
	}
	return labels
}

// IsKnown reports whether the label is a supported category.
func IsKnown(category string) bool {
	_, ok := categoryTypes[category]
	return ok
}
