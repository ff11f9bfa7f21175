package user

import (
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/i18n"
	"github.com/nfrund/tinyhouse/internal/modules/user/view"
	"github.com/nfrund/tinyhouse/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ContentID is the id of the element holding the page's query-driven content.
const ContentID = "user-content"

const contentTarget = "#" + ContentID

// PageProps is everything needed to render the content of a user page.
type PageProps struct {
	Localizer i18n.Localizer
	Viewer    domain.Viewer
	Result    QueryResult
	Cursors   Cursors
	Links     Links
	// StripeError is the raw stripe_error query value; any non-empty value
	// shows the payment banner.
	StripeError  string
	AuthorizeURL string
}

// ViewerIsUser reports whether the viewer is looking at their own page.
func (p PageProps) ViewerIsUser() bool {
	return p.Viewer.IsUser(p.Links.ID)
}

// Page renders exactly one of the loading, error and success states.
func Page(p PageProps) cmp.Node {
	l := p.Localizer

	if p.Result.Loading {
		return g.Div(
			g.ID(ContentID),
			g.Class("user-content"),
			hx.Get(p.Links.Content(p.Cursors, p.StripeError)),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
			components.PageSkeleton(l),
		)
	}

	if p.Result.Err != nil {
		return content(
			components.ErrorBanner(l, l.T(i18n.UserError)),
			components.PageSkeleton(l),
		)
	}

	u := p.Result.User
	var profile, listings, bookings cmp.Node
	if u != nil {
		profile = view.Profile(l, view.ProfileProps{
			User:          u,
			ViewerIsUser:  p.ViewerIsUser(),
			AuthorizeURL:  p.AuthorizeURL,
			RefreshURL:    p.Links.Content(p.Cursors, ""),
			DisconnectURL: p.Links.Disconnect(p.Cursors),
			Target:        contentTarget,
		})
		if u.Listings != nil {
			listings = view.Listings(l, u.Listings, p.pager(u.Listings.Total, p.Cursors.Listings, p.Cursors.WithListings))
		}
		if u.Bookings != nil {
			bookings = view.Bookings(l, u.Bookings, p.pager(u.Bookings.Total, p.Cursors.Bookings, p.Cursors.WithBookings))
		}
	}

	return content(
		cmp.If(p.StripeError != "", components.ErrorBanner(l, l.T(i18n.UserStripeError))),
		profile,
		listings,
		bookings,
	)
}

func content(children ...cmp.Node) cmp.Node {
	return g.Div(g.ID(ContentID), g.Class("user-content"), cmp.Group(children))
}

// pager builds the links of one sublist. move changes only that sublist's
// cursor, so the other one is carried unchanged.
func (p PageProps) pager(total, current int, move func(int) Cursors) components.PagerProps {
	return components.PagerProps{
		Total:    total,
		Limit:    PageLimit,
		Current:  current,
		Link:     func(page int) string { return p.Links.Page(move(page)) },
		Fragment: func(page int) string { return p.Links.Content(move(page), "") },
		Target:   contentTarget,
	}
}
