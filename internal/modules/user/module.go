package user

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/metrics"
	"github.com/nfrund/tinyhouse/internal/middleware"
	"github.com/nfrund/tinyhouse/internal/module"
	"github.com/nfrund/tinyhouse/internal/payments"
	"github.com/nfrund/tinyhouse/internal/registry"
	"github.com/nfrund/tinyhouse/internal/rendering"
)

// ServiceKey is the registry key of the user query service.
var ServiceKey = registry.Key[*Service]("user.service")

// walletActionsPerMinute bounds wallet changes per client IP.
const walletActionsPerMinute = 10

type Dependencies struct {
	Repository   domain.UserRepository
	Connector    payments.Connector
	AuthorizeURL string
	Metrics      *metrics.Metrics
	Renderer     rendering.Renderer
}

type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "user"
}

// Register makes the query service available to other modules.
func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, ServiceKey, NewService(m.deps.Repository, m.deps.Connector, m.deps.Metrics))
	return nil
}

// Boot mounts the page, its fragment and the wallet routes.
func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	service := registry.MustGet(reg, ServiceKey)
	m.handler = NewHandler(service, m.deps.Renderer, m.deps.Metrics, m.deps.AuthorizeURL)

	group.GET("/user/:id", m.handler.Get)
	group.GET("/user/:id/content", m.handler.Content)
	group.POST("/user/:id/wallet/disconnect", m.handler.DisconnectWallet, middleware.RateLimiter(walletActionsPerMinute))
	group.GET("/stripe/connect", m.handler.StripeConnect, middleware.RateLimiter(walletActionsPerMinute))
	return nil
}
