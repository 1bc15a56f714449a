// Package service holds the wishlist business rules.
package service

import (
	"context"
	"strings"

	"github.com/pushpakrawat/veekend/internal/wishlist/repository"
	"github.com/pushpakrawat/veekend/internal/wishlist/transport"
	"github.com/pushpakrawat/veekend/platform/apperr"

	"github.com/google/uuid"
)

// Service mediates between the HTTP layer and the wishlist store.
type Service struct {
	repo repository.Store
}

func New(repo repository.Store) *Service {
	return &Service{repo: repo}
}

// UserRef carries the authenticated identity the wishlist writes under.
type UserRef struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
}

// Save adds a venue to the user's wishlist. The user row is provisioned from
// the token identity first; auth is external and never writes users itself.
func (s *Service) Save(ctx context.Context, user UserRef, req transport.SaveVenueRequest) (transport.ItemResponse, error) {
	name := strings.TrimSpace(req.VenueName)
	if name == "" {
		return transport.ItemResponse{}, apperr.Validation("venue name is required")
	}

	if err := s.repo.EnsureUser(ctx, repository.EnsureUserParams{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}); err != nil {
		return transport.ItemResponse{}, err
	}

	item, err := s.repo.Create(ctx, repository.CreateItemParams{
		UserID:        user.ID,
		PlaceID:       strings.TrimSpace(req.PlaceID),
		VenueName:     name,
		VenueAddress:  strings.TrimSpace(req.VenueAddress),
		VenueRating:   req.VenueRating,
		VenuePhotoURL: strings.TrimSpace(req.VenuePhotoURL),
	})
	if err != nil {
		return transport.ItemResponse{}, err
	}

	return transport.FromItem(item), nil
}

// List returns the user's wishlist, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (transport.ListResponse, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return transport.ListResponse{}, err
	}
	return transport.FromItems(items), nil
}

// Remove deletes one wishlist item by id.
func (s *Service) Remove(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// RemoveByPlace deletes one wishlist item by provider place id.
func (s *Service) RemoveByPlace(ctx context.Context, userID uuid.UUID, placeID string) error {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return apperr.Validation("place id is required")
	}
	return s.repo.DeleteByPlace(ctx, userID, placeID)
}
