// Package places defines the venue domain model and the gateway contract for
// the third-party places provider.
package places

import "context"

// SearchLocation is a resolved geographic point with a display address.
// Instances are treated as immutable once produced; replacing one invalidates
// any result list derived from it.
type SearchLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// VenueFilters refine a nearby search. DistanceKm is in kilometers.
type VenueFilters struct {
	Category    string  `json:"category"`
	DistanceKm  float64 `json:"distanceKm"`
	MinRating   float64 `json:"minRating"`
	PriceLevels []int   `json:"priceLevels"`
}

// DefaultFilters returns the initial filter set for a new search session.
func DefaultFilters() VenueFilters {
	return VenueFilters{
		Category:    "dining",
		DistanceKm:  5,
		MinRating:   0,
		PriceLevels: []int{1, 2, 3, 4},
	}
}

// PhotoRef identifies a provider-hosted photo.
type PhotoRef struct {
	Reference string `json:"reference"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Review is a single user review on a venue record.
type Review struct {
	AuthorName       string  `json:"authorName"`
	Rating           float64 `json:"rating"`
	Text             string  `json:"text"`
	RelativeTimeDesc string  `json:"relativeTimeDescription"`
	Time             int64   `json:"time"`
}

// OpeningHours captures the provider's opening information.
type OpeningHours struct {
	OpenNow     bool     `json:"openNow"`
	WeekdayText []string `json:"weekdayText,omitempty"`
}

// VenueRecord is one venue as returned by the provider, augmented with the
// distance from the search origin. DistanceKm is computed locally per search
// and never persisted by the provider.
type VenueRecord struct {
	PlaceID        string        `json:"placeId"`
	Name           string        `json:"name"`
	Address        string        `json:"address"`
	Lat            float64       `json:"lat"`
	Lng            float64       `json:"lng"`
	Rating         *float64      `json:"rating,omitempty"`
	RatingCount    *int          `json:"ratingCount,omitempty"`
	PriceLevel     *int          `json:"priceLevel,omitempty"`
	CategoryTags   []string      `json:"categoryTags"`
	Photos         []PhotoRef    `json:"photos,omitempty"`
	OpeningHours   *OpeningHours `json:"openingHours,omitempty"`
	BusinessStatus string        `json:"businessStatus,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Website        string        `json:"website,omitempty"`
	Reviews        []Review      `json:"reviews,omitempty"`
	DistanceKm     float64       `json:"distanceKm"`
}

// SearchPage is one provider page of raw venues plus the continuation token
// for the next page, if the provider indicated more results exist.
type SearchPage struct {
	Venues        []VenueRecord
	NextPageToken string
}

// Suggestion is one autocomplete prediction.
type Suggestion struct {
	PlaceID       string `json:"placeId"`
	PrimaryText   string `json:"primaryText"`
	SecondaryText string `json:"secondaryText"`
}

// Gateway is the contract between the search pipeline and the places
// provider. It is injected into consumers at construction so tests can
// substitute fakes; there is no process-wide client instance.
type Gateway interface {
	// NearbySearch issues one provider request. pageToken, when non-empty,
	// must come from a prior call for the same location and filters.
	NearbySearch(ctx context.Context, loc SearchLocation, filters VenueFilters, pageToken string) (SearchPage, error)
	// Details fetches the full venue record including reviews and hours.
	Details(ctx context.Context, placeID string) (VenueRecord, error)
	// Suggest returns autocomplete predictions for the input. Provider-side
	// "no results" yields an empty slice, not an error. Callers gate inputs
	// shorter than three characters and own debouncing.
	Suggest(ctx context.Context, input string) ([]Suggestion, error)
	// Geocode resolves an address string to a location.
	Geocode(ctx context.Context, address string) (SearchLocation, error)
	// ReverseGeocode resolves a coordinate to an addressed location. When the
	// provider cannot produce an address the raw coordinate is returned with
	// the address label "Current Location" instead of failing.
	ReverseGeocode(ctx context.Context, lat, lng float64) (SearchLocation, error)
	// PhotoURL builds the asset URL for a photo reference. Pure string
	// construction, no network call.
	PhotoURL(photoRef string, maxWidth int) string
}
