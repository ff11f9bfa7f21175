package view

import (
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/i18n"
	"github.com/nfrund/tinyhouse/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Listings renders one page of the user's listings with its pager.
func Listings(l i18n.Localizer, page *domain.ListingsPage, pager components.PagerProps) cmp.Node {
	return g.Section(
		g.Class("user-listings"),
		g.H2(cmp.Text(l.T(i18n.ListingsTitle))),
		g.P(g.Class("muted"), cmp.Text(l.T(i18n.ListingsDescription))),
		cmp.If(len(page.Result) == 0, g.P(g.Class("empty"), cmp.Text(l.T(i18n.ListingsEmpty)))),
		cmp.If(len(page.Result) > 0, g.Ul(
			g.Class("card-grid"),
			cmp.Map(page.Result, func(item domain.Listing) cmp.Node {
				return listingCard(l, item)
			}),
		)),
		components.Pager(l, pager),
	)
}

func listingCard(l i18n.Localizer, item domain.Listing) cmp.Node {
	return g.Li(
		g.Class("card"),
		g.Data("listing-id", item.ID),
		cmp.If(item.Image != "", g.Img(g.Src(item.Image), g.Alt(item.Title))),
		g.Div(
			g.Class("card__body"),
			g.H3(cmp.Text(item.Title)),
			g.P(g.Class("muted"), cmp.Text(item.Address+", "+item.City)),
			g.P(cmp.Text(l.T(i18n.ListingPrice, l.Money(item.Price)))),
			g.P(cmp.Text(l.T(i18n.ListingGuests, item.NumOfGuests))),
		),
	)
}
