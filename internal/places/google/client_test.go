package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pushpakrawat/veekend/internal/places"
	"github.com/pushpakrawat/veekend/platform/logger"
)

type testPlacesConfig struct {
	baseURL string
}

func (c testPlacesConfig) GetGoogleMapsAPIKey() string            { return "test-key" }
func (c testPlacesConfig) GetGoogleMapsBaseURL() string           { return c.baseURL }
func (c testPlacesConfig) GetPlaceDetailsCacheTTL() time.Duration { return time.Minute }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(testPlacesConfig{baseURL: srv.URL}, nil, logger.New("development"))
}

func testLocation() places.SearchLocation {
	return places.SearchLocation{Lat: 40.7128, Lng: -74.006, Address: "New York, NY"}
}

func TestNearbySearchRequestMapping(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"next_page_token": "token-2",
			"results": [{
				"place_id": "p1",
				"name": "Joe's Pizza",
				"vicinity": "7 Carmine St",
				"geometry": {"location": {"lat": 40.7304, "lng": -74.0028}},
				"rating": 4.5,
				"user_ratings_total": 120,
				"price_level": 2,
				"types": ["restaurant", "food"]
			}]
		}`))
	})

	filters := places.DefaultFilters()
	page, err := client.NearbySearch(context.Background(), testLocation(), filters, "prior-token")
	if err != nil {
		t.Fatalf("NearbySearch: %v", err)
	}

	if got := gotQuery.Get("radius"); got != "5000" {
		t.Fatalf("expected km to m radius conversion 5000, got %q", got)
	}
	if got := gotQuery.Get("type"); got != "restaurant" {
		t.Fatalf("expected dining to resolve to restaurant, got %q", got)
	}
	if got := gotQuery.Get("location"); got != "40.7128,-74.006" {
		t.Fatalf("unexpected location param %q", got)
	}
	if got := gotQuery.Get("pagetoken"); got != "prior-token" {
		t.Fatalf("expected pagetoken to pass through, got %q", got)
	}

	if page.NextPageToken != "token-2" {
		t.Fatalf("expected next page token token-2, got %q", page.NextPageToken)
	}
	if len(page.Venues) != 1 {
		t.Fatalf("expected 1 venue, got %d", len(page.Venues))
	}

	venue := page.Venues[0]
	if venue.PlaceID != "p1" || venue.Name != "Joe's Pizza" {
		t.Fatalf("unexpected venue %+v", venue)
	}
	if venue.Address != "7 Carmine St" {
		t.Fatalf("expected vicinity used as address, got %q", venue.Address)
	}
	if venue.Rating == nil || *venue.Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", venue.Rating)
	}
	if venue.PriceLevel == nil || *venue.PriceLevel != 2 {
		t.Fatalf("expected price level 2, got %v", venue.PriceLevel)
	}
}

func TestNearbySearchOmitsEmptyPageToken(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	if _, err := client.NearbySearch(context.Background(), testLocation(), places.DefaultFilters(), ""); err != nil {
		t.Fatalf("NearbySearch: %v", err)
	}
	if gotQuery.Has("pagetoken") {
		t.Fatal("pagetoken must be omitted for a fresh search")
	}
}

func TestNearbySearchProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": []}`))
	})

	_, err := client.NearbySearch(context.Background(), testLocation(), places.DefaultFilters(), "")

	var provErr *places.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Status != "OVER_QUERY_LIMIT" {
		t.Fatalf("expected status OVER_QUERY_LIMIT, got %q", provErr.Status)
	}
}

func TestNearbySearchZeroResultsFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.NearbySearch(context.Background(), testLocation(), places.DefaultFilters(), "")

	var provErr *places.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError for zero results, got %v", err)
	}
	if provErr.Status != "ZERO_RESULTS" {
		t.Fatalf("expected status ZERO_RESULTS, got %q", provErr.Status)
	}
}

func TestDetailsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "NOT_FOUND"}`))
	})

	_, err := client.Details(context.Background(), "missing-place")

	var notFound *places.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.PlaceID != "missing-place" {
		t.Fatalf("expected place id in error, got %q", notFound.PlaceID)
	}
}

func TestDetailsFieldMaskAndMapping(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Joe's Pizza",
				"formatted_address": "7 Carmine St, New York, NY",
				"geometry": {"location": {"lat": 40.7304, "lng": -74.0028}},
				"opening_hours": {"open_now": true, "weekday_text": ["Monday: 11AM-10PM"]},
				"reviews": [{"author_name": "Ana", "rating": 5, "text": "great", "relative_time_description": "a week ago", "time": 1700000000}],
				"website": "https://joespizza.example"
			}
		}`))
	})

	record, err := client.Details(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}

	fields := gotQuery.Get("fields")
	for _, required := range []string{"place_id", "reviews", "opening_hours", "formatted_phone_number"} {
		if !strings.Contains(fields, required) {
			t.Fatalf("field mask missing %q: %q", required, fields)
		}
	}

	if record.Address != "7 Carmine St, New York, NY" {
		t.Fatalf("unexpected address %q", record.Address)
	}
	if record.OpeningHours == nil || !record.OpeningHours.OpenNow {
		t.Fatalf("expected opening hours mapped, got %+v", record.OpeningHours)
	}
	if len(record.Reviews) != 1 || record.Reviews[0].AuthorName != "Ana" {
		t.Fatalf("expected review mapped, got %+v", record.Reviews)
	}
}

func TestSuggestZeroResultsIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "predictions": []}`))
	})

	suggestions, err := client.Suggest(context.Background(), "Nowheresville")
	if err != nil {
		t.Fatalf("ZERO_RESULTS should not fail, got %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected empty suggestions, got %+v", suggestions)
	}
}

func TestSuggestMapsPredictions(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"predictions": [{
				"place_id": "city-1",
				"structured_formatting": {"main_text": "London", "secondary_text": "UK"}
			}]
		}`))
	})

	suggestions, err := client.Suggest(context.Background(), "London")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if got := gotQuery.Get("types"); got != "(cities)" {
		t.Fatalf("expected (cities) type constraint, got %q", got)
	}
	if len(suggestions) != 1 || suggestions[0].PrimaryText != "London" || suggestions[0].SecondaryText != "UK" {
		t.Fatalf("unexpected suggestions %+v", suggestions)
	}
}

func TestGeocodeZeroMatchesFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "nowhere at all")

	var geoErr *places.GeocodeError
	if !errors.As(err, &geoErr) {
		t.Fatalf("expected GeocodeError, got %v", err)
	}
}

func TestGeocodeFirstMatchWins(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"formatted_address": "New York, NY, USA", "geometry": {"location": {"lat": 40.7128, "lng": -74.006}}},
				{"formatted_address": "New York Mills, MN, USA", "geometry": {"location": {"lat": 46.5, "lng": -95.4}}}
			]
		}`))
	})

	loc, err := client.Geocode(context.Background(), "New York")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if loc.Address != "New York, NY, USA" || loc.Lat != 40.7128 {
		t.Fatalf("expected first geocode match, got %+v", loc)
	}
}

func TestReverseGeocodeFallsBackToCurrentLocation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	loc, err := client.ReverseGeocode(context.Background(), 40.7128, -74.006)
	if err != nil {
		t.Fatalf("reverse geocode must not fail on zero matches, got %v", err)
	}
	if loc.Address != "Current Location" {
		t.Fatalf("expected Current Location fallback, got %q", loc.Address)
	}
	if loc.Lat != 40.7128 || loc.Lng != -74.006 {
		t.Fatalf("expected raw coordinate preserved, got %+v", loc)
	}
}

func TestReverseGeocodeUsesFormattedAddress(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latlng"); got != "40.7128,-74.006" {
			t.Errorf("unexpected latlng param %q", got)
		}
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "Broadway, New York, NY", "geometry": {"location": {"lat": 40.7128, "lng": -74.006}}}]
		}`))
	})

	loc, err := client.ReverseGeocode(context.Background(), 40.7128, -74.006)
	if err != nil {
		t.Fatalf("ReverseGeocode: %v", err)
	}
	if loc.Address != "Broadway, New York, NY" {
		t.Fatalf("expected formatted address, got %q", loc.Address)
	}
}

func TestPhotoURL(t *testing.T) {
	client := New(testPlacesConfig{baseURL: "https://maps.example.com"}, nil, logger.New("development"))

	got := client.PhotoURL("photo-ref-1", 400)

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("photo URL does not parse: %v", err)
	}
	if parsed.Path != photoPath {
		t.Fatalf("unexpected path %q", parsed.Path)
	}
	q := parsed.Query()
	if q.Get("maxwidth") != "400" || q.Get("photoreference") != "photo-ref-1" || q.Get("key") != "test-key" {
		t.Fatalf("unexpected query %q", parsed.RawQuery)
	}
}
