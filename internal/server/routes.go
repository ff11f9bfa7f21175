package server

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/tinyhouse/internal/handlers"
	"github.com/nfrund/tinyhouse/internal/i18n"
	"github.com/nfrund/tinyhouse/internal/middleware"
	"github.com/nfrund/tinyhouse/internal/view"
	"github.com/nfrund/tinyhouse/web"
	"github.com/nfrund/tinyhouse/web/src/templates/layouts"
	"github.com/nfrund/tinyhouse/web/src/templates/pages"
)

// registerRoutes sets up the routes that don't belong to a module.
func (s *Server) registerRoutes(deps Deps) {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", handlers.NewHealthHandler(deps.Health).Get)
	s.E.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Metrics}))

	s.E.GET("/", func(c echo.Context) error {
		viewer := middleware.ViewerFrom(c)
		if viewer.Authenticated() {
			return c.Redirect(http.StatusFound, "/user/"+url.PathEscape(viewer.ID))
		}
		l := i18n.FromRequest(c.Request())
		return c.Render(http.StatusOK, "", layouts.Base("", l.Lang(), view.GetFlashData(c), pages.Home(l)))
	})
}
