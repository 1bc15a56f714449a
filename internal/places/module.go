package places

import (
	apphttp "github.com/pushpakrawat/veekend/internal/http"
	"github.com/pushpakrawat/veekend/platform/validator"
)

// Module wires the location resolution HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(gw Gateway, val *validator.Validator) *Module {
	return &Module{handler: NewHandler(gw, val)}
}

func (m *Module) Name() string {
	return "places"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/places")
	group.GET("/suggest", m.handler.Suggest)
	group.GET("/geocode", m.handler.Geocode)
	group.POST("/current-location", m.handler.CurrentLocation)
}

var _ apphttp.Module = (*Module)(nil)
