// Package google implements the places gateway against the Google Maps web
// service APIs.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pushpakrawat/veekend/internal/places"
	"github.com/pushpakrawat/veekend/internal/taxonomy"
	"github.com/pushpakrawat/veekend/platform/cache"
	"github.com/pushpakrawat/veekend/platform/config"
	"github.com/pushpakrawat/veekend/platform/logger"

	"golang.org/x/sync/singleflight"
)

const (
	nearbySearchPath = "/maps/api/place/nearbysearch/json"
	detailsPath      = "/maps/api/place/details/json"
	autocompletePath = "/maps/api/place/autocomplete/json"
	geocodePath      = "/maps/api/geocode/json"
	photoPath        = "/maps/api/place/photo"

	// detailsFields is the field mask requested on detail fetches.
	detailsFields = "place_id,name,formatted_address,geometry,rating," +
		"user_ratings_total,price_level,types,photos,opening_hours," +
		"business_status,formatted_phone_number,website,reviews"
)

// Client is the HTTP client for the Google Places, Geocoding, and
// Autocomplete web services. It implements places.Gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	detailsTTL time.Duration
	cache      *cache.Cache
	flight     singleflight.Group
	log        *logger.Logger
}

// New creates a provider client. cache may be nil, which disables detail
// caching.
func New(cfg config.PlacesConfig, c *cache.Cache, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.GetGoogleMapsBaseURL(),
		apiKey:     cfg.GetGoogleMapsAPIKey(),
		detailsTTL: cfg.GetPlaceDetailsCacheTTL(),
		cache:      c,
		log:        log,
	}
}

var _ places.Gateway = (*Client)(nil)

// NearbySearch issues one nearby-search request. The filter's distance is
// converted from kilometers to the provider's meter radius, and the category
// is resolved through the taxonomy to a provider type token.
func (c *Client) NearbySearch(ctx context.Context, loc places.SearchLocation, filters places.VenueFilters, pageToken string) (places.SearchPage, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(loc.Lat, loc.Lng))
	params.Set("radius", strconv.Itoa(int(filters.DistanceKm*1000)))
	params.Set("type", taxonomy.Resolve(filters.Category))
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	var payload searchResponse
	if err := c.get(ctx, nearbySearchPath, params, &payload); err != nil {
		return places.SearchPage{}, err
	}

	// Unlike Suggest, zero results is a failure here: the session surfaces
	// it so the user widens the search instead of seeing a silent empty list.
	if payload.Status != statusOK {
		c.log.ProviderError(nearbySearchPath, payload.Status, nil)
		return places.SearchPage{}, &places.ProviderError{Status: payload.Status}
	}

	page := places.SearchPage{
		Venues:        make([]places.VenueRecord, 0, len(payload.Results)),
		NextPageToken: payload.NextPageToken,
	}
	for _, result := range payload.Results {
		page.Venues = append(page.Venues, result.toVenueRecord())
	}

	return page, nil
}

// Details fetches the full venue record. Responses are cached and concurrent
// fetches for the same place are collapsed into one provider call.
func (c *Client) Details(ctx context.Context, placeID string) (places.VenueRecord, error) {
	cacheKey := "places:details:" + placeID

	var cached places.VenueRecord
	err := c.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		c.log.CacheError("details get", err)
	}

	value, err, _ := c.flight.Do(placeID, func() (interface{}, error) {
		record, err := c.fetchDetails(ctx, placeID)
		if err != nil {
			return nil, err
		}
		if err := c.cache.Set(ctx, cacheKey, record, c.detailsTTL); err != nil {
			c.log.CacheError("details set", err)
		}
		return record, nil
	})
	if err != nil {
		return places.VenueRecord{}, err
	}

	return value.(places.VenueRecord), nil
}

func (c *Client) fetchDetails(ctx context.Context, placeID string) (places.VenueRecord, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	params.Set("key", c.apiKey)

	var payload detailsResponse
	if err := c.get(ctx, detailsPath, params, &payload); err != nil {
		return places.VenueRecord{}, err
	}

	switch payload.Status {
	case statusOK:
		return payload.Result.toVenueRecord(), nil
	case statusNotFound, statusZeroResults:
		return places.VenueRecord{}, &places.NotFoundError{PlaceID: placeID}
	default:
		c.log.ProviderError(detailsPath, payload.Status, nil)
		return places.VenueRecord{}, &places.ProviderError{Status: payload.Status}
	}
}

// Suggest returns city autocomplete predictions. Provider "no results" and
// rejected empty input both yield an empty slice.
func (c *Client) Suggest(ctx context.Context, input string) ([]places.Suggestion, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", "(cities)")
	params.Set("key", c.apiKey)

	var payload autocompleteResponse
	if err := c.get(ctx, autocompletePath, params, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case statusOK:
	case statusZeroResults, statusInvalidRequest:
		return []places.Suggestion{}, nil
	default:
		c.log.ProviderError(autocompletePath, payload.Status, nil)
		return nil, &places.ProviderError{Status: payload.Status}
	}

	suggestions := make([]places.Suggestion, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		suggestions = append(suggestions, places.Suggestion{
			PlaceID:       p.PlaceID,
			PrimaryText:   p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}

	return suggestions, nil
}

// Geocode resolves an address to a location. Zero matches fail with a
// GeocodeError so the caller can prompt for a refined input.
func (c *Client) Geocode(ctx context.Context, address string) (places.SearchLocation, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	var payload geocodeResponse
	if err := c.get(ctx, geocodePath, params, &payload); err != nil {
		return places.SearchLocation{}, err
	}

	switch payload.Status {
	case statusOK:
	case statusZeroResults:
		return places.SearchLocation{}, &places.GeocodeError{Address: address}
	default:
		c.log.ProviderError(geocodePath, payload.Status, nil)
		return places.SearchLocation{}, &places.ProviderError{Status: payload.Status}
	}

	if len(payload.Results) == 0 {
		return places.SearchLocation{}, &places.GeocodeError{Address: address}
	}

	first := payload.Results[0]
	return places.SearchLocation{
		Lat:     first.Geometry.Location.Lat,
		Lng:     first.Geometry.Location.Lng,
		Address: first.FormattedAddress,
	}, nil
}

// ReverseGeocode resolves a coordinate to an addressed location. When the
// provider has no address for the coordinate, the raw coordinate is returned
// with the label "Current Location" rather than an error.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (places.SearchLocation, error) {
	params := url.Values{}
	params.Set("latlng", formatLatLng(lat, lng))
	params.Set("key", c.apiKey)

	fallback := places.SearchLocation{Lat: lat, Lng: lng, Address: "Current Location"}

	var payload geocodeResponse
	if err := c.get(ctx, geocodePath, params, &payload); err != nil {
		return places.SearchLocation{}, err
	}

	if payload.Status != statusOK || len(payload.Results) == 0 {
		return fallback, nil
	}

	return places.SearchLocation{
		Lat:     lat,
		Lng:     lng,
		Address: payload.Results[0].FormattedAddress,
	}, nil
}

// PhotoURL builds the photo asset URL for a reference.
func (c *Client) PhotoURL(photoRef string, maxWidth int) string {
	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("photoreference", photoRef)
	params.Set("key", c.apiKey)
	return c.baseURL + photoPath + "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ProviderError(path, "", err)
		return fmt.Errorf("http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.log.ProviderError(path, strconv.Itoa(resp.StatusCode), nil)
		return &places.ProviderError{Status: strconv.Itoa(resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.log.ProviderError(path, "decode", err)
		return fmt.Errorf("decode response: %w", err)
	}

	c.log.ProviderCall(path, strconv.Itoa(resp.StatusCode), float64(time.Since(start).Milliseconds()))
	return nil
}

func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
