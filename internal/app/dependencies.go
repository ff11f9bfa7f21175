package app

import (
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/metrics"
	"github.com/nfrund/tinyhouse/internal/modules/user"
	"github.com/nfrund/tinyhouse/internal/payments"
	"github.com/nfrund/tinyhouse/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Users        domain.UserRepository
	Connector    payments.Connector
	AuthorizeURL string
	Metrics      *metrics.Metrics
	Renderer     rendering.Renderer
}

// userDeps creates the dependency struct for the user module.
func userDeps(deps Dependencies) user.Dependencies {
	return user.Dependencies{
		Repository:   deps.Users,
		Connector:    deps.Connector,
		AuthorizeURL: deps.AuthorizeURL,
		Metrics:      deps.Metrics,
		Renderer:     deps.Renderer,
	}
}
