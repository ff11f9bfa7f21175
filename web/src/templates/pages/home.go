package pages

import (
	"github.com/nfrund/tinyhouse/internal/i18n"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the landing page shown to signed-out visitors.
func Home(l i18n.Localizer) cmp.Node {
	return g.Section(
		g.Class("home"),
		g.H1(cmp.Text(l.T(i18n.HomeTitle))),
		g.P(g.Class("muted"), cmp.Text(l.T(i18n.HomeBody))),
	)
}
