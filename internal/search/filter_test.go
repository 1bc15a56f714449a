package search

import (
	"testing"

	"github.com/pushpakrawat/veekend/internal/places"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func testOrigin() places.SearchLocation {
	return places.SearchLocation{Lat: 40.7128, Lng: -74.0060, Address: "New York, NY"}
}

func TestApplyFiltersPassThroughWhenUnrestricted(t *testing.T) {
	raw := []places.VenueRecord{
		{PlaceID: "a", Lat: 40.7128, Lng: -74.0060},
		{PlaceID: "b", Lat: 40.7589, Lng: -73.9851, Rating: floatPtr(3.1)},
		{PlaceID: "c", Lat: 40.7484, Lng: -73.9857, PriceLevel: intPtr(4)},
	}

	got := ApplyFilters(raw, places.VenueFilters{MinRating: 0, PriceLevels: nil}, testOrigin())
	if len(got) != 3 {
		t.Fatalf("expected all 3 venues to pass, got %d", len(got))
	}
	for i, v := range got {
		if v.PlaceID != raw[i].PlaceID {
			t.Fatalf("order changed at %d: got %s, want %s", i, v.PlaceID, raw[i].PlaceID)
		}
	}
}

func TestApplyFiltersMinRating(t *testing.T) {
	raw := []places.VenueRecord{
		{PlaceID: "low", Rating: floatPtr(3.5)},
		{PlaceID: "high", Rating: floatPtr(4.5)},
		{PlaceID: "exact", Rating: floatPtr(4.0)},
		{PlaceID: "unrated"},
	}

	got := ApplyFilters(raw, places.VenueFilters{MinRating: 4.0}, testOrigin())
	if len(got) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(got))
	}
	if got[0].PlaceID != "high" || got[1].PlaceID != "exact" {
		t.Fatalf("unexpected survivors: %s, %s", got[0].PlaceID, got[1].PlaceID)
	}
}

func TestApplyFiltersAbsentRatingFailsThreshold(t *testing.T) {
	raw := []places.VenueRecord{{PlaceID: "unrated"}}

	got := ApplyFilters(raw, places.VenueFilters{MinRating: 0.5}, testOrigin())
	if len(got) != 0 {
		t.Fatalf("venue without rating must fail any positive threshold, got %d survivors", len(got))
	}
}

func TestApplyFiltersPriceLevels(t *testing.T) {
	raw := []places.VenueRecord{
		{PlaceID: "cheap", PriceLevel: intPtr(1)},
		{PlaceID: "mid", PriceLevel: intPtr(2)},
		{PlaceID: "lux", PriceLevel: intPtr(4)},
		{PlaceID: "unpriced"},
	}

	got := ApplyFilters(raw, places.VenueFilters{PriceLevels: []int{1, 2}}, testOrigin())
	if len(got) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(got))
	}
	if got[0].PlaceID != "cheap" || got[1].PlaceID != "mid" {
		t.Fatalf("unexpected survivors: %s, %s", got[0].PlaceID, got[1].PlaceID)
	}
}

func TestApplyFiltersAbsentPriceFailsSelection(t *testing.T) {
	raw := []places.VenueRecord{{PlaceID: "unpriced"}}

	got := ApplyFilters(raw, places.VenueFilters{PriceLevels: []int{1, 2, 3, 4}}, testOrigin())
	if len(got) != 0 {
		t.Fatalf("venue without price level must fail price selection, got %d survivors", len(got))
	}
}

func TestApplyFiltersAnnotatesDistance(t *testing.T) {
	raw := []places.VenueRecord{
		{PlaceID: "times-square", Lat: 40.7580, Lng: -73.9855},
	}

	got := ApplyFilters(raw, places.VenueFilters{}, testOrigin())
	if len(got) != 1 {
		t.Fatalf("expected 1 venue, got %d", len(got))
	}
	if got[0].DistanceKm < 5.0 || got[0].DistanceKm > 5.5 {
		t.Fatalf("distance out of expected range: %v", got[0].DistanceKm)
	}
}
