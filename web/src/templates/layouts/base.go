package layouts

import (
	"github.com/nfrund/tinyhouse/internal/view"
	cmp "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document with the site header and the
// flash area.
func Base(title, lang string, flash view.FlashData, content ...cmp.Node) cmp.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: lang,
		Head: []cmp.Node{
			g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			g.Script(g.Src(htmxSrc), g.Defer()),
		},
		Body: []cmp.Node{
			g.Header(
				g.Class("app-header"),
				g.A(g.Href("/"), g.Class("app-header__logo"), cmp.Text(siteName)),
			),
			view.AdaptTemplToGomponent(view.FlashMessages(flash, false)),
			g.Main(g.Class("app-main"), cmp.Group(content)),
		},
	})
}
