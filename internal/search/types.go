package search

import "github.com/pushpakrawat/veekend/internal/places"

// SetLocationRequest replaces the session's search origin. Clients resolve
// coordinates first, via geocoding or device location.
type SetLocationRequest struct {
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"gte=-180,lte=180"`
	Address string  `json:"address" validate:"required,max=500"`
}

// UpdateFiltersRequest is a partial filter update; omitted fields keep their
// current values.
type UpdateFiltersRequest struct {
	Category    *string  `json:"category" validate:"omitempty,min=1,max=50"`
	DistanceKm  *float64 `json:"distanceKm" validate:"omitempty,gte=1,lte=20"`
	MinRating   *float64 `json:"minRating" validate:"omitempty,gte=0,lte=5"`
	PriceLevels *[]int   `json:"priceLevels" validate:"omitempty,min=1,dive,gte=1,lte=4"`
}

// SuggestRequest carries the autocomplete input. Inputs shorter than three
// characters never reach the provider.
type SuggestRequest struct {
	Input string `form:"input" validate:"required,min=3,max=200"`
}

// SessionResponse is the full session state. Every session mutation returns
// it, so clients never need a follow-up read.
type SessionResponse struct {
	ID          string                 `json:"id"`
	Location    *places.SearchLocation `json:"location"`
	Filters     places.VenueFilters    `json:"filters"`
	Results     []places.VenueRecord   `json:"results"`
	Pagination  PaginationInfo         `json:"pagination"`
	Status      string                 `json:"status"`
	LastError   string                 `json:"lastError,omitempty"`
	Suggestions []places.Suggestion    `json:"suggestions"`
}

func sessionResponse(snap Snapshot) SessionResponse {
	results := snap.Results
	if results == nil {
		results = []places.VenueRecord{}
	}
	suggestions := snap.Suggestions
	if suggestions == nil {
		suggestions = []places.Suggestion{}
	}
	return SessionResponse{
		ID:          snap.ID.String(),
		Location:    snap.Location,
		Filters:     snap.Filters,
		Results:     results,
		Pagination:  snap.Pagination,
		Status:      string(snap.Status),
		LastError:   snap.LastError,
		Suggestions: suggestions,
	}
}

// VenuePhoto is a photo reference resolved to a fetchable URL.
type VenuePhoto struct {
	Reference string `json:"reference"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	URL       string `json:"url"`
}

// VenueDetailResponse is a full venue record with photo URLs resolved.
type VenueDetailResponse struct {
	places.VenueRecord
	PhotoURLs []VenuePhoto `json:"photoUrls"`
}

func venueDetailResponse(record places.VenueRecord, gw places.Gateway, maxWidth int) VenueDetailResponse {
	photoURLs := make([]VenuePhoto, 0, len(record.Photos))
	for _, p := range record.Photos {
		photoURLs = append(photoURLs, VenuePhoto{
			Reference: p.Reference,
			Width:     p.Width,
			Height:    p.Height,
			URL:       gw.PhotoURL(p.Reference, maxWidth),
		})
	}
	return VenueDetailResponse{VenueRecord: record, PhotoURLs: photoURLs}
}

// SuggestResponse wraps autocomplete predictions.
type SuggestResponse struct {
	Suggestions []places.Suggestion `json:"suggestions"`
}
