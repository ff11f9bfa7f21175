package components

import (
	"github.com/nfrund/tinyhouse/internal/i18n"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const skeletonRows = 3

// PageSkeleton renders the placeholder shown while the page data loads.
func PageSkeleton(l i18n.Localizer) cmp.Node {
	rows := make([]cmp.Node, 0, skeletonRows)
	for i := 0; i < skeletonRows; i++ {
		rows = append(rows, g.Div(g.Class("page-skeleton__row")))
	}
	return g.Div(
		g.Class("page-skeleton"),
		g.Aria("busy", "true"),
		g.Aria("label", l.T(i18n.SkeletonLoading)),
		cmp.Group(rows),
	)
}
