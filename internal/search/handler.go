package search

import (
	"errors"
	"net/http"

	"github.com/pushpakrawat/veekend/internal/places"
	"github.com/pushpakrawat/veekend/platform/apperr"
	"github.com/pushpakrawat/veekend/platform/httpkit"
	"github.com/pushpakrawat/veekend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"

	// detailPhotoWidth is the width requested for photo URLs on detail views.
	detailPhotoWidth = 400
)

// Handler exposes the search session API.
type Handler struct {
	sessions *Manager
	gw       places.Gateway
	val      *validator.Validator
}

func NewHandler(sessions *Manager, gw places.Gateway, val *validator.Validator) *Handler {
	return &Handler{sessions: sessions, gw: gw, val: val}
}

// CreateSession starts a new search session for the authenticated user.
func (h *Handler) CreateSession(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	session := h.sessions.Create(identity.UserID())
	httpkit.JSON(c, http.StatusCreated, sessionResponse(session.Snapshot()))
}

// GetSession returns the current session state.
func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	httpkit.OK(c, sessionResponse(session.Snapshot()))
}

// DeleteSession discards a session.
func (h *Handler) DeleteSession(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.sessions.Delete(id, identity.UserID()); err != nil {
		httpkit.HandleError(c, mapErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetLocation replaces the session's search origin.
func (h *Handler) SetLocation(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	session.SetLocation(places.SearchLocation{Lat: req.Lat, Lng: req.Lng, Address: req.Address})
	httpkit.OK(c, sessionResponse(session.Snapshot()))
}

// UpdateFilters applies a partial filter update without re-searching.
func (h *Handler) UpdateFilters(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	session.UpdateFilters(FilterPatch{
		Category:    req.Category,
		DistanceKm:  req.DistanceKm,
		MinRating:   req.MinRating,
		PriceLevels: req.PriceLevels,
	})
	httpkit.OK(c, sessionResponse(session.Snapshot()))
}

// ResetFilters restores the default filter set.
func (h *Handler) ResetFilters(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.ResetFilters()
	httpkit.OK(c, sessionResponse(session.Snapshot()))
}

// Search runs a fresh venue search for the session's location and filters.
func (h *Handler) Search(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.Search(c.Request.Context()); err != nil {
		httpkit.HandleError(c, mapErr(err))
		return
	}
	httpkit.OK(c, sessionResponse(session.Snapshot()))
}

// NextPage loads the next result page, when one is available.
func (h *Handler) NextPage(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.LoadNextPage(c.Request.Context()); err != nil {
		httpkit.HandleError(c, mapErr(err))
		return
	}
	httpkit.OK(c, sessionResponse(session.Snapshot()))
}

// VenueDetails fetches the full record for one venue.
func (h *Handler) VenueDetails(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	placeID := c.Param("placeId")
	if placeID == "" {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	record, err := session.VenueDetails(c.Request.Context(), placeID)
	if err != nil {
		httpkit.HandleError(c, mapErr(err))
		return
	}
	httpkit.OK(c, venueDetailResponse(record, h.gw, detailPhotoWidth))
}

// Suggest returns location autocomplete predictions for the session.
func (h *Handler) Suggest(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	suggestions, err := session.Suggest(c.Request.Context(), req.Input)
	if err != nil {
		httpkit.HandleError(c, mapErr(err))
		return
	}
	if suggestions == nil {
		suggestions = []places.Suggestion{}
	}
	httpkit.OK(c, SuggestResponse{Suggestions: suggestions})
}

// ClearError clears the session's last error.
func (h *Handler) ClearError(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.ClearError()
	httpkit.OK(c, sessionResponse(session.Snapshot()))
}

// session resolves the :id path parameter to a session owned by the caller.
// All error responses are written here; ok is false when the caller should
// return immediately.
func (h *Handler) session(c *gin.Context) (*Session, bool) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return nil, false
	}

	session, err := h.sessions.Get(id, identity.UserID())
	if err != nil {
		httpkit.HandleError(c, mapErr(err))
		return nil, false
	}
	return session, true
}

// mapErr translates domain errors into typed apperr values for the HTTP
// status mapping.
func mapErr(err error) error {
	var provErr *places.ProviderError
	var nfErr *places.NotFoundError

	switch {
	case errors.Is(err, ErrSessionNotFound):
		return apperr.NotFound("search session not found")
	case errors.Is(err, ErrMissingLocation):
		return apperr.BadRequest("set a search location first")
	case errors.As(err, &nfErr):
		return apperr.NotFound("venue not found")
	case errors.As(err, &provErr):
		return apperr.Unavailable("venue provider request failed").WithDetails(provErr.Status)
	default:
		return apperr.Wrap(apperr.KindInternal, "search operation failed", err)
	}
}
