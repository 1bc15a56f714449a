package wishlist

import (
	apphttp "github.com/pushpakrawat/veekend/internal/http"
	"github.com/pushpakrawat/veekend/internal/wishlist/handler"
	"github.com/pushpakrawat/veekend/internal/wishlist/repository"
	"github.com/pushpakrawat/veekend/internal/wishlist/service"
	"github.com/pushpakrawat/veekend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module wires the wishlist HTTP routes.
type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "wishlist"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/wishlist")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
