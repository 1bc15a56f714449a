// Package transport defines the request and response shapes for the
// wishlist HTTP API.
package transport

import (
	"time"

	"github.com/pushpakrawat/veekend/internal/wishlist/repository"
)

// SaveVenueRequest adds a venue to the caller's wishlist. Venue fields are
// captured as shown at save time so the list renders without provider calls.
type SaveVenueRequest struct {
	PlaceID       string   `json:"placeId" validate:"required,max=300"`
	VenueName     string   `json:"venueName" validate:"required,max=300"`
	VenueAddress  string   `json:"venueAddress" validate:"omitempty,max=500"`
	VenueRating   *float64 `json:"venueRating" validate:"omitempty,gte=0,lte=5"`
	VenuePhotoURL string   `json:"venuePhotoUrl" validate:"omitempty,url,max=1000"`
}

// ItemResponse is one saved venue.
type ItemResponse struct {
	ID            string    `json:"id"`
	PlaceID       string    `json:"placeId"`
	VenueName     string    `json:"venueName"`
	VenueAddress  string    `json:"venueAddress"`
	VenueRating   *float64  `json:"venueRating,omitempty"`
	VenuePhotoURL string    `json:"venuePhotoUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListResponse is the caller's full wishlist.
type ListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// FromItem maps a repository row to the response shape.
func FromItem(item repository.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID.String(),
		PlaceID:       item.PlaceID,
		VenueName:     item.VenueName,
		VenueAddress:  item.VenueAddress,
		VenueRating:   item.VenueRating,
		VenuePhotoURL: item.VenuePhotoURL,
		CreatedAt:     item.CreatedAt,
	}
}

// FromItems maps a slice of repository rows.
func FromItems(items []repository.Item) ListResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromItem(item))
	}
	return ListResponse{Items: out, Total: len(out)}
}
