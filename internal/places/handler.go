package places

import (
	"context"
	"errors"
	"net/http"

	"github.com/pushpakrawat/veekend/platform/apperr"
	"github.com/pushpakrawat/veekend/platform/httpkit"
	"github.com/pushpakrawat/veekend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// GeocodeRequest resolves a free-form address.
type GeocodeRequest struct {
	Address string `form:"address" validate:"required,min=1,max=500"`
}

// SuggestQuery carries the autocomplete input.
type SuggestQuery struct {
	Input string `form:"input" validate:"required,min=3,max=200"`
}

// CurrentLocationRequest reports the device's position, or the reason it
// could not be obtained. Exactly one of the two shapes is expected: a
// coordinate, or an error reason.
type CurrentLocationRequest struct {
	Lat   *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng   *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	Error string   `json:"error" validate:"omitempty,oneof=denied timeout unsupported"`
}

// SuggestionsResponse wraps autocomplete predictions.
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Handler exposes location resolution endpoints: geocoding, autocomplete,
// and device-position resolution. These sit outside any search session so a
// client can resolve a location before creating one.
type Handler struct {
	gw  Gateway
	val *validator.Validator
}

func NewHandler(gw Gateway, val *validator.Validator) *Handler {
	return &Handler{gw: gw, val: val}
}

// Suggest handles GET /api/v1/places/suggest?input=...
func (h *Handler) Suggest(c *gin.Context) {
	var req SuggestQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	suggestions, err := h.gw.Suggest(c.Request.Context(), req.Input)
	if err != nil {
		httpkit.HandleError(c, mapProviderErr(err))
		return
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	httpkit.OK(c, SuggestionsResponse{Suggestions: suggestions})
}

// Geocode handles GET /api/v1/places/geocode?address=...
func (h *Handler) Geocode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	loc, err := h.gw.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		httpkit.HandleError(c, mapProviderErr(err))
		return
	}
	httpkit.OK(c, loc)
}

// CurrentLocation handles POST /api/v1/places/current-location. The device
// either reports its coordinate, which is resolved to an addressed location,
// or reports why no coordinate was available.
func (h *Handler) CurrentLocation(c *gin.Context) {
	var req CurrentLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if req.Error != "" {
		err := &LocationUnavailableError{Reason: LocationReason(req.Error)}
		httpkit.HandleError(c, apperr.BadRequest(err.Error()).WithDetails(string(err.Reason)))
		return
	}
	if req.Lat == nil || req.Lng == nil {
		httpkit.Error(c, http.StatusBadRequest, "lat and lng are required", nil)
		return
	}

	loc, err := CurrentLocation(c.Request.Context(), h.gw, staticLocator{lat: *req.Lat, lng: *req.Lng})
	if err != nil {
		httpkit.HandleError(c, mapProviderErr(err))
		return
	}
	httpkit.OK(c, loc)
}

// staticLocator adapts a coordinate the device already reported to the
// DeviceLocator contract.
type staticLocator struct {
	lat, lng float64
}

func (l staticLocator) CurrentPosition(ctx context.Context) (float64, float64, error) {
	return l.lat, l.lng, nil
}

func mapProviderErr(err error) error {
	var provErr *ProviderError
	var geoErr *GeocodeError
	var locErr *LocationUnavailableError

	switch {
	case errors.As(err, &geoErr):
		return apperr.NotFound("no matches for that address")
	case errors.As(err, &locErr):
		return apperr.BadRequest(locErr.Error()).WithDetails(string(locErr.Reason))
	case errors.As(err, &provErr):
		return apperr.Unavailable("location provider request failed").WithDetails(provErr.Status)
	default:
		return apperr.Wrap(apperr.KindInternal, "location lookup failed", err)
	}
}
