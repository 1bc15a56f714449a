// Package handler exposes the wishlist HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/pushpakrawat/veekend/internal/wishlist/service"
	"github.com/pushpakrawat/veekend/internal/wishlist/transport"
	"github.com/pushpakrawat/veekend/platform/httpkit"
	"github.com/pushpakrawat/veekend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Save)
	rg.GET("", h.List)
	rg.DELETE("/:id", h.Remove)
	rg.DELETE("/by-place/:placeId", h.RemoveByPlace)
}

// Save handles POST /api/v1/wishlist.
func (h *Handler) Save(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.SaveVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	user := service.UserRef{
		ID:          identity.UserID(),
		Email:       identity.Email(),
		DisplayName: identity.DisplayName(),
	}
	item, err := h.svc.Save(c.Request.Context(), user, req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusCreated, item)
}

// List handles GET /api/v1/wishlist.
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	list, err := h.svc.List(c.Request.Context(), identity.UserID())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, list)
}

// Remove handles DELETE /api/v1/wishlist/:id.
func (h *Handler) Remove(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.svc.Remove(c.Request.Context(), identity.UserID(), id); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveByPlace handles DELETE /api/v1/wishlist/by-place/:placeId.
func (h *Handler) RemoveByPlace(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	if err := h.svc.RemoveByPlace(c.Request.Context(), identity.UserID(), c.Param("placeId")); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
