package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pushpakrawat/veekend/internal/geo"
	"github.com/pushpakrawat/veekend/internal/places"
	"github.com/pushpakrawat/veekend/platform/logger"

	"github.com/google/uuid"
)

// ErrMissingLocation is returned by Search when no location has been set.
// It is recoverable: the session keeps its current status and the caller can
// retry after supplying a location.
var ErrMissingLocation = errors.New("no search location set")

// Status is the session's position in the search state machine.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// FilterPatch is a partial filter update. Nil fields are left unchanged.
type FilterPatch struct {
	Category    *string
	DistanceKm  *float64
	MinRating   *float64
	PriceLevels *[]int
}

// Session is one search conversation: a location, a filter set, and the
// result pages accumulated for them. All state is owned exclusively by the
// session and serialized through its mutex; provider calls happen outside
// the lock so a session never blocks on the network while rejecting
// concurrent work.
type Session struct {
	id    uuid.UUID
	owner uuid.UUID
	gw    places.Gateway
	log   *logger.Logger

	mu                sync.Mutex
	location          *places.SearchLocation
	filters           places.VenueFilters
	results           []places.VenueRecord
	pagination        PaginationInfo
	continuationToken string
	status            Status
	lastError         string
	currentVenue      *places.VenueRecord
	suggestions       []places.Suggestion

	// inFlight gates list fetches: a Search or LoadNextPage while another is
	// outstanding is a no-op, not an error and not queued.
	inFlight bool
	// epoch invalidates in-flight fetches when location or filters change.
	// There is no request cancellation; only result adoption is suppressed.
	epoch uint64
	// suggestSeq implements last-write-wins adoption for autocomplete.
	suggestSeq uint64

	lastActive time.Time
}

// NewSession creates a session for the given owner with an injected gateway.
func NewSession(owner uuid.UUID, gw places.Gateway, log *logger.Logger) *Session {
	return &Session{
		id:         uuid.New(),
		owner:      owner,
		gw:         gw,
		log:        log,
		filters:    places.DefaultFilters(),
		pagination: emptyPagination(),
		status:     StatusIdle,
		lastActive: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Owner returns the user the session belongs to.
func (s *Session) Owner() uuid.UUID { return s.owner }

// SetLocation replaces the search origin. The current result list and any
// pagination continuity are discarded; the session returns to Idle and the
// caller must explicitly trigger a new Search.
func (s *Session) SetLocation(loc places.SearchLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.location = &loc
	s.results = nil
	s.continuationToken = ""
	s.pagination = emptyPagination()
	s.status = StatusIdle
	s.epoch++
	s.touch()
}

// UpdateFilters merges a partial filter update. It never triggers a search
// itself; the caller owns the re-search decision. Any change discards the
// continuation token, since a fresh search abandons pagination continuity.
func (s *Session) UpdateFilters(patch FilterPatch) places.VenueFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Category != nil {
		s.filters.Category = *patch.Category
	}
	if patch.DistanceKm != nil {
		s.filters.DistanceKm = *patch.DistanceKm
	}
	if patch.MinRating != nil {
		s.filters.MinRating = *patch.MinRating
	}
	if patch.PriceLevels != nil {
		s.filters.PriceLevels = append([]int(nil), (*patch.PriceLevels)...)
	}

	s.continuationToken = ""
	s.pagination.HasNextPage = false
	s.epoch++
	s.touch()

	return s.filters
}

// ResetFilters restores the default filter set.
func (s *Session) ResetFilters() places.VenueFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = places.DefaultFilters()
	s.continuationToken = ""
	s.pagination.HasNextPage = false
	s.epoch++
	s.touch()

	return s.filters
}

// Search runs a fresh nearby search for the current location and filters.
// Requires a location; fails with ErrMissingLocation otherwise without
// changing the session status. A call while a fetch is outstanding is a
// no-op.
func (s *Session) Search(ctx context.Context) error {
	s.mu.Lock()
	if s.location == nil {
		s.lastError = ErrMissingLocation.Error()
		s.touch()
		s.mu.Unlock()
		return ErrMissingLocation
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}

	s.inFlight = true
	prevStatus := s.status
	s.status = StatusLoading
	s.results = nil
	s.continuationToken = ""
	s.lastError = ""
	epoch := s.epoch
	loc := *s.location
	filters := s.snapshotFiltersLocked()
	s.touch()
	s.mu.Unlock()

	page, err := s.gw.NearbySearch(ctx, loc, filters, "")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if s.epoch != epoch {
		// Superseded by a location or filter change; drop the response. No
		// fetch is outstanding anymore, so Loading must not linger.
		if s.status == StatusLoading {
			s.status = prevStatus
		}
		return nil
	}

	if err != nil {
		s.status = StatusFailed
		s.lastError = err.Error()
		s.log.Warn("venue search failed", "session", s.id, "error", err)
		return err
	}

	filtered := ApplyFilters(page.Venues, filters, loc)
	s.results = filtered
	s.continuationToken = page.NextPageToken
	s.pagination = freshPagination(len(filtered), page.NextPageToken != "")
	s.status = StatusReady

	return nil
}

// LoadNextPage fetches the next page with the stored continuation token and
// appends it to the accumulated results. It is a no-op when no token is held
// or while another fetch is outstanding. On failure the session transitions
// to Failed but previously accumulated results are preserved.
func (s *Session) LoadNextPage(ctx context.Context) error {
	s.mu.Lock()
	if s.continuationToken == "" || s.inFlight {
		s.mu.Unlock()
		return nil
	}

	s.inFlight = true
	prevStatus := s.status
	s.status = StatusLoading
	s.lastError = ""
	epoch := s.epoch
	token := s.continuationToken
	loc := *s.location
	filters := s.snapshotFiltersLocked()
	s.touch()
	s.mu.Unlock()

	page, err := s.gw.NearbySearch(ctx, loc, filters, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if s.epoch != epoch {
		if s.status == StatusLoading {
			s.status = prevStatus
		}
		return nil
	}

	if err != nil {
		s.status = StatusFailed
		s.lastError = err.Error()
		s.log.Warn("load next page failed", "session", s.id, "error", err)
		return err
	}

	filtered := ApplyFilters(page.Venues, filters, loc)
	// Provider place IDs are assumed unique across pages; no dedup pass.
	s.results = append(s.results, filtered...)
	s.continuationToken = page.NextPageToken
	s.pagination = s.pagination.advance(len(s.results), page.NextPageToken != "")
	s.status = StatusReady

	return nil
}

// VenueDetails fetches one venue's full record into the session's current
// venue slot. It is independent of the list-search state machine: failures
// clear the slot and record the error without touching results or status.
func (s *Session) VenueDetails(ctx context.Context, placeID string) (places.VenueRecord, error) {
	record, err := s.gw.Details(ctx, placeID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err != nil {
		s.currentVenue = nil
		s.lastError = err.Error()
		return places.VenueRecord{}, err
	}

	if s.location != nil {
		record.DistanceKm = geo.DistanceKm(s.location.Lat, s.location.Lng, record.Lat, record.Lng)
	}
	s.currentVenue = &record
	return record, nil
}

// Suggest fetches autocomplete predictions for the input. Adoption is
// last-write-wins: when a newer request was issued before this one resolved,
// the stale response is discarded and the currently adopted list returned.
func (s *Session) Suggest(ctx context.Context, input string) ([]places.Suggestion, error) {
	s.mu.Lock()
	s.suggestSeq++
	seq := s.suggestSeq
	s.touch()
	s.mu.Unlock()

	suggestions, err := s.gw.Suggest(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.suggestSeq {
		return append([]places.Suggestion(nil), s.suggestions...), nil
	}

	if err != nil {
		return nil, err
	}

	s.suggestions = suggestions
	return append([]places.Suggestion(nil), s.suggestions...), nil
}

// ClearError clears the last error. Errors never auto-expire; the caller
// surfaces each failure once and clears it explicitly.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
	s.touch()
}

// Snapshot is a point-in-time copy of the session state for rendering.
type Snapshot struct {
	ID           uuid.UUID
	Location     *places.SearchLocation
	Filters      places.VenueFilters
	Results      []places.VenueRecord
	Pagination   PaginationInfo
	Status       Status
	LastError    string
	CurrentVenue *places.VenueRecord
	Suggestions  []places.Suggestion
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.id,
		Filters:     s.snapshotFiltersLocked(),
		Results:     append([]places.VenueRecord(nil), s.results...),
		Pagination:  s.pagination,
		Status:      s.status,
		LastError:   s.lastError,
		Suggestions: append([]places.Suggestion(nil), s.suggestions...),
	}
	if s.location != nil {
		loc := *s.location
		snap.Location = &loc
	}
	if s.currentVenue != nil {
		venue := *s.currentVenue
		snap.CurrentVenue = &venue
	}
	return snap
}

// LastActive returns the time of the most recent operation on the session.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) snapshotFiltersLocked() places.VenueFilters {
	filters := s.filters
	filters.PriceLevels = append([]int(nil), s.filters.PriceLevels...)
	return filters
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}
