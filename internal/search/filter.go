// Package search implements the venue discovery pipeline: filtering,
// pagination state, and the search session state machine.
package search

import (
	"github.com/pushpakrawat/veekend/internal/geo"
	"github.com/pushpakrawat/veekend/internal/places"
)

// ApplyFilters annotates each raw venue with its distance from the origin
// and applies the rating and price post-filters. Input order is preserved;
// the provider's ranking is never re-sorted here. Filtering is local to the
// page it is given: it does not compensate for pages that shrink below the
// page size.
func ApplyFilters(raw []places.VenueRecord, filters places.VenueFilters, origin places.SearchLocation) []places.VenueRecord {
	out := make([]places.VenueRecord, 0, len(raw))

	for _, venue := range raw {
		if filters.MinRating > 0 {
			// A missing rating fails the minimum-rating filter.
			if venue.Rating == nil || *venue.Rating < filters.MinRating {
				continue
			}
		}

		if len(filters.PriceLevels) > 0 {
			if venue.PriceLevel == nil || !containsInt(filters.PriceLevels, *venue.PriceLevel) {
				continue
			}
		}

		venue.DistanceKm = geo.DistanceKm(origin.Lat, origin.Lng, venue.Lat, venue.Lng)
		out = append(out, venue)
	}

	return out
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
