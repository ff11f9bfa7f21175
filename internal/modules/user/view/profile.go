// Package view renders the sections of a user page.
package view

import (
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/i18n"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ProfileProps is the input of the profile section.
type ProfileProps struct {
	User         *domain.User
	ViewerIsUser bool
	// AuthorizeURL starts the Stripe Connect flow.
	AuthorizeURL string
	// RefreshURL re-fetches the page content.
	RefreshURL string
	// DisconnectURL removes the user's wallet.
	DisconnectURL string
	// Target is the selector replaced by refresh and disconnect responses.
	Target string
}

// Profile renders the user's details and, for the user themself, the wallet area.
func Profile(l i18n.Localizer, p ProfileProps) cmp.Node {
	u := p.User
	return g.Section(
		g.Class("user-profile"),
		g.Img(g.Class("user-profile__avatar"), g.Src(u.Avatar), g.Alt(u.Name)),
		g.Div(
			g.H2(cmp.Text(l.T(i18n.ProfileDetails))),
			g.P(cmp.Text(l.T(i18n.ProfileName)+" "), g.Strong(cmp.Text(u.Name))),
			g.P(cmp.Text(l.T(i18n.ProfileContact)+" "), g.Strong(cmp.Text(u.Contact))),
			g.Button(
				g.Type("button"),
				g.Class("user-profile__refresh"),
				hx.Get(p.RefreshURL),
				hx.Target(p.Target),
				hx.Swap("outerHTML"),
				cmp.Text(l.T(i18n.ProfileRefresh)),
			),
		),
		cmp.If(p.ViewerIsUser, wallet(l, p)),
	)
}

func wallet(l i18n.Localizer, p ProfileProps) cmp.Node {
	u := p.User
	if !u.HasWallet {
		return g.Div(
			g.Class("user-profile__wallet"),
			g.H3(cmp.Text(l.T(i18n.WalletTitle))),
			g.P(cmp.Text(l.T(i18n.WalletInterested))),
			g.A(g.Class("button button--primary"), g.Href(p.AuthorizeURL), cmp.Text(l.T(i18n.WalletConnect))),
			g.P(g.Class("muted"), cmp.Text(l.T(i18n.WalletHelp))),
		)
	}

	income := 0
	if u.Income != nil {
		income = *u.Income
	}
	return g.Div(
		g.Class("user-profile__wallet"),
		g.H3(cmp.Text(l.T(i18n.WalletTitle))),
		g.Span(g.Class("tag tag--success"), cmp.Text(l.T(i18n.WalletConnected))),
		g.P(cmp.Text(l.T(i18n.WalletIncome, l.Money(income)))),
		g.Button(
			g.Type("button"),
			g.Class("button"),
			hx.Post(p.DisconnectURL),
			hx.Target(p.Target),
			hx.Swap("outerHTML"),
			cmp.Text(l.T(i18n.WalletDisconnect)),
		),
		g.P(g.Class("muted"), cmp.Text(l.T(i18n.WalletHelp))),
	)
}
