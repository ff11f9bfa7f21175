// Package components holds the shared presentational pieces used by pages.
package components

import (
	"github.com/nfrund/tinyhouse/internal/i18n"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ErrorBanner renders an alert with a localized title and the given description.
func ErrorBanner(l i18n.Localizer, description string) cmp.Node {
	return g.Div(
		g.Class("error-banner"),
		g.Role("alert"),
		g.Strong(g.Class("error-banner__title"), cmp.Text(l.T(i18n.BannerTitle))),
		g.P(g.Class("error-banner__description"), cmp.Text(description)),
	)
}
