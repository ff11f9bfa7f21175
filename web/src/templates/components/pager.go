package components

import (
	"strconv"

	"github.com/nfrund/tinyhouse/internal/i18n"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// PagerProps describes one paginated list.
type PagerProps struct {
	Total   int
	Limit   int
	Current int
	// Link is the full-page URL for a page number. It is used for the
	// href and pushed into the history.
	Link func(page int) string
	// Fragment is the URL htmx fetches for a page number.
	Fragment func(page int) string
	// Target is the CSS selector swapped with the fetched fragment.
	Target string
}

// Pages returns the number of pages needed for total items.
func Pages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Pager renders previous, numbered and next links. Nothing is rendered when
// everything fits on one page.
func Pager(l i18n.Localizer, p PagerProps) cmp.Node {
	if p.Total <= p.Limit {
		return cmp.Group{}
	}
	pages := Pages(p.Total, p.Limit)

	items := make([]cmp.Node, 0, pages+2)
	if p.Current > 1 {
		items = append(items, g.Li(pagerLink(p, p.Current-1, l.T(i18n.PagerPrevious), "")))
	}
	for n := 1; n <= pages; n++ {
		if n == p.Current {
			items = append(items, g.Li(g.Span(
				g.Class("pager__current"),
				g.Aria("current", "page"),
				cmp.Text(strconv.Itoa(n)),
			)))
			continue
		}
		items = append(items, g.Li(pagerLink(p, n, strconv.Itoa(n), l.T(i18n.PagerLabel, n))))
	}
	if p.Current < pages {
		items = append(items, g.Li(pagerLink(p, p.Current+1, l.T(i18n.PagerNext), "")))
	}

	return g.Nav(g.Class("pager"), g.Ul(cmp.Group(items)))
}

func pagerLink(p PagerProps, page int, text, label string) cmp.Node {
	return g.A(
		g.Href(p.Link(page)),
		hx.Get(p.Fragment(page)),
		hx.Target(p.Target),
		hx.Swap("outerHTML"),
		hx.PushURL(p.Link(page)),
		cmp.If(label != "", g.Aria("label", label)),
		cmp.Text(text),
	)
}
