package search

import (
	apphttp "github.com/pushpakrawat/veekend/internal/http"
	"github.com/pushpakrawat/veekend/internal/places"
	"github.com/pushpakrawat/veekend/platform/validator"
)

// Module wires the search session HTTP routes.
type Module struct {
	handler *Handler
	manager *Manager
}

func NewModule(manager *Manager, gw places.Gateway, val *validator.Validator) *Module {
	h := NewHandler(manager, gw, val)
	return &Module{handler: h, manager: manager}
}

func (m *Module) Name() string {
	return "search"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/search/sessions")
	group.POST("", m.handler.CreateSession)
	group.GET("/:id", m.handler.GetSession)
	group.DELETE("/:id", m.handler.DeleteSession)
	group.PUT("/:id/location", m.handler.SetLocation)
	group.PUT("/:id/filters", m.handler.UpdateFilters)
	group.POST("/:id/filters/reset", m.handler.ResetFilters)
	group.POST("/:id/search", m.handler.Search)
	group.POST("/:id/next-page", m.handler.NextPage)
	group.GET("/:id/venues/:placeId", m.handler.VenueDetails)
	group.GET("/:id/suggest", m.handler.Suggest)
	group.POST("/:id/clear-error", m.handler.ClearError)
}

var _ apphttp.Module = (*Module)(nil)
