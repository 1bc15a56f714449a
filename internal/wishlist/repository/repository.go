// Package repository persists wishlist items in Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pushpakrawat/veekend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	itemNotFoundMessage  = "wishlist item not found"
	uniqueViolationCode  = "23505"
	itemDuplicateMessage = "venue already on wishlist"
)

// Item is one saved venue on a user's wishlist. Venue fields are denormalized
// at save time; the list renders without provider calls.
type Item struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PlaceID       string
	VenueName     string
	VenueAddress  string
	VenueRating   *float64
	VenuePhotoURL string
	CreatedAt     time.Time
}

// CreateItemParams holds the fields for a new wishlist item.
type CreateItemParams struct {
	UserID        uuid.UUID
	PlaceID       string
	VenueName     string
	VenueAddress  string
	VenueRating   *float64
	VenuePhotoURL string
}

// EnsureUserParams identifies a user row provisioned from the auth token.
type EnsureUserParams struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
}

// Store is the persistence contract the wishlist service depends on.
type Store interface {
	EnsureUser(ctx context.Context, params EnsureUserParams) error
	Create(ctx context.Context, params CreateItemParams) (Item, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByPlace(ctx context.Context, userID uuid.UUID, placeID string) error
}

// Repo is the pgx-backed Store implementation.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Store = (*Repo)(nil)

// EnsureUser provisions the user row for an externally authenticated
// identity. Auth never writes to this database, so the row is created on
// first use; later tokens refresh the informational claim copies.
func (r *Repo) EnsureUser(ctx context.Context, params EnsureUserParams) error {
	query := `
        INSERT INTO users (id, email, display_name)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE
        SET email = EXCLUDED.email, display_name = EXCLUDED.display_name`

	if _, err := r.pool.Exec(ctx, query, params.ID, params.Email, params.DisplayName); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

// Create inserts a wishlist item. Saving the same place twice for one user
// yields a conflict.
func (r *Repo) Create(ctx context.Context, params CreateItemParams) (Item, error) {
	query := `
        INSERT INTO wishlist_items (
            user_id, place_id, venue_name, venue_address, venue_rating, venue_photo_url
        ) VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, user_id, place_id, venue_name, venue_address, venue_rating, venue_photo_url, created_at`

	var item Item
	if err := r.pool.QueryRow(ctx, query,
		params.UserID,
		params.PlaceID,
		params.VenueName,
		params.VenueAddress,
		params.VenueRating,
		params.VenuePhotoURL,
	).Scan(
		&item.ID,
		&item.UserID,
		&item.PlaceID,
		&item.VenueName,
		&item.VenueAddress,
		&item.VenueRating,
		&item.VenuePhotoURL,
		&item.CreatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return Item{}, apperr.Conflict(itemDuplicateMessage)
		}
		return Item{}, fmt.Errorf("create wishlist item: %w", err)
	}

	return item, nil
}

// ListByUser returns the user's wishlist, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	query := `
        SELECT id, user_id, place_id, venue_name, venue_address, venue_rating, venue_photo_url, created_at
        FROM wishlist_items
        WHERE user_id = $1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist items: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.PlaceID,
			&item.VenueName,
			&item.VenueAddress,
			&item.VenueRating,
			&item.VenuePhotoURL,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist items: %w", err)
	}

	return items, nil
}

// Delete removes an item by id, scoped to its owner.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM wishlist_items WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(itemNotFoundMessage)
	}
	return nil
}

// DeleteByPlace removes an item by its provider place id, scoped to its
// owner. Lets clients toggle a venue off the wishlist from a result card
// without knowing the row id.
func (r *Repo) DeleteByPlace(ctx context.Context, userID uuid.UUID, placeID string) error {
	query := `DELETE FROM wishlist_items WHERE user_id = $1 AND place_id = $2`

	tag, err := r.pool.Exec(ctx, query, userID, placeID)
	if err != nil {
		return fmt.Errorf("delete wishlist item by place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(itemNotFoundMessage)
	}
	return nil
}
