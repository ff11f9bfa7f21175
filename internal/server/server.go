package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/tinyhouse/internal/app"
	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/nfrund/tinyhouse/internal/database"
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/handlers"
	"github.com/nfrund/tinyhouse/internal/metrics"
	"github.com/nfrund/tinyhouse/internal/middleware"
	"github.com/nfrund/tinyhouse/internal/module"
	"github.com/nfrund/tinyhouse/internal/payments"
	"github.com/nfrund/tinyhouse/internal/registry"
	"github.com/nfrund/tinyhouse/internal/rendering"
	"github.com/prometheus/client_golang/prometheus"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry

	conn    *database.Connection
	modules []module.Module
}

// Deps are the collaborators the server is built around. Tests pass fakes.
type Deps struct {
	Users     domain.UserRepository
	Connector payments.Connector
	// AuthorizeURL starts the Stripe Connect flow.
	AuthorizeURL string
	// Health reports database reachability; nil disables the check.
	Health handlers.HealthChecker
	// Metrics is where collectors are registered and gathered from.
	Metrics *prometheus.Registry
}

// New connects to the database and builds a server from the configuration.
func New(ctx context.Context, cfg config.Provider) (*Server, error) {
	conn := database.NewConnection(cfg)
	if err := conn.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	conn.StartMonitoring()

	store, err := database.NewUserStore(conn, cfg)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("create user store: %w", err)
	}

	stripe := payments.NewStripeConnector(cfg)
	s, err := Build(ctx, cfg, Deps{
		Users:        store,
		Connector:    stripe,
		AuthorizeURL: stripe.AuthorizeURL(),
		Health:       conn,
		Metrics:      prometheus.NewRegistry(),
	})
	if err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	s.conn = conn
	return s, nil
}

// Build wires echo, the middleware stack and the application modules.
func Build(ctx context.Context, cfg config.Provider, deps Deps) (*Server, error) {
	if deps.Metrics == nil {
		deps.Metrics = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "tinyhouse",
		Registerer: deps.Metrics,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.Viewer)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		Registry: registry.New(cfg),
	}
	s.modules = app.NewModules(app.Dependencies{
		Users:        deps.Users,
		Connector:    deps.Connector,
		AuthorizeURL: deps.AuthorizeURL,
		Metrics:      metrics.New(deps.Metrics),
		Renderer:     rendering.NewUniversalRenderer(),
	})

	s.registerRoutes(deps)
	if err := s.bootModules(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "event", "module_booted", "module", m.Name())
	}
	return nil
}
