package view

import (
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/i18n"
	"github.com/nfrund/tinyhouse/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Bookings renders one page of the stays the user booked, with its pager.
func Bookings(l i18n.Localizer, page *domain.BookingsPage, pager components.PagerProps) cmp.Node {
	return g.Section(
		g.Class("user-bookings"),
		g.H2(cmp.Text(l.T(i18n.BookingsTitle))),
		g.P(g.Class("muted"), cmp.Text(l.T(i18n.BookingsDescription))),
		cmp.If(len(page.Result) == 0, g.P(g.Class("empty"), cmp.Text(l.T(i18n.BookingsEmpty)))),
		cmp.If(len(page.Result) > 0, g.Ul(
			g.Class("card-grid"),
			cmp.Map(page.Result, func(b domain.Booking) cmp.Node {
				return bookingCard(l, b)
			}),
		)),
		components.Pager(l, pager),
	)
}

func bookingCard(l i18n.Localizer, b domain.Booking) cmp.Node {
	return g.Li(
		g.Class("card"),
		g.Data("booking-id", b.ID),
		cmp.If(b.Listing.Image != "", g.Img(g.Src(b.Listing.Image), g.Alt(b.Listing.Title))),
		g.Div(
			g.Class("card__body"),
			g.H3(cmp.Text(b.Listing.Title)),
			g.P(g.Class("muted"), cmp.Text(b.Listing.City)),
			g.P(cmp.Text(l.T(i18n.BookingCheckIn, l.Date(b.CheckIn)))),
			g.P(cmp.Text(l.T(i18n.BookingCheckOut, l.Date(b.CheckOut)))),
		),
	)
}
