package user

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Query parameter names.
const (
	ListingsPageParam = "listings_page"
	BookingsPageParam = "bookings_page"
	StripeErrorParam  = "stripe_error"
	langParam         = "lang"
)

// PageRequest is bound from the route and query string of every user page
// request.
type PageRequest struct {
	ID           string `param:"id" validate:"required,max=128"`
	ListingsPage int    `query:"listings_page" validate:"min=1"`
	BookingsPage int    `query:"bookings_page" validate:"min=1"`
	StripeError  string `query:"stripe_error"`
	Lang         string `query:"lang" validate:"omitempty,max=35"`
}

// bindPageRequest binds path and query parameters regardless of the HTTP
// method, since the wallet actions carry the cursors in the query string
// of a POST.
func bindPageRequest(c echo.Context) (PageRequest, error) {
	req := PageRequest{ListingsPage: 1, BookingsPage: 1}

	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, &req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid route parameters").SetInternal(err)
	}
	if err := binder.BindQueryParams(c, &req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid page request").SetInternal(err)
	}
	return req, nil
}

// Cursors are the two independent page positions on a user page.
type Cursors struct {
	Listings int
	Bookings int
}

// WithListings returns a copy with the listings cursor moved to page.
func (c Cursors) WithListings(page int) Cursors {
	c.Listings = page
	return c
}

// WithBookings returns a copy with the bookings cursor moved to page.
func (c Cursors) WithBookings(page int) Cursors {
	c.Bookings = page
	return c
}

// Cursors extracts the page positions from the request.
func (r PageRequest) Cursors() Cursors {
	return Cursors{Listings: r.ListingsPage, Bookings: r.BookingsPage}
}

// Variables builds the query inputs for the request.
func (r PageRequest) Variables() Variables {
	return Variables{ID: r.ID, Limit: PageLimit, ListingsPage: r.ListingsPage, BookingsPage: r.BookingsPage}
}

// Links builds the URLs of one user's page.
type Links struct {
	ID   string
	Lang string
}

func (r PageRequest) Links() Links {
	return Links{ID: r.ID, Lang: r.Lang}
}

func (l Links) base() string {
	return "/user/" + url.PathEscape(l.ID)
}

func (l Links) query(cur Cursors, extra url.Values) string {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	q.Set(ListingsPageParam, strconv.Itoa(cur.Listings))
	q.Set(BookingsPageParam, strconv.Itoa(cur.Bookings))
	if l.Lang != "" {
		q.Set(langParam, l.Lang)
	}
	return "?" + q.Encode()
}

// Page is the full-page URL for cur.
func (l Links) Page(cur Cursors) string {
	return l.base() + l.query(cur, nil)
}

// Content is the fragment URL for cur. A non-empty stripeError is forwarded.
func (l Links) Content(cur Cursors, stripeError string) string {
	var extra url.Values
	if stripeError != "" {
		extra = url.Values{StripeErrorParam: {stripeError}}
	}
	return l.base() + "/content" + l.query(cur, extra)
}

// Disconnect is the wallet disconnect action for cur.
func (l Links) Disconnect(cur Cursors) string {
	return l.base() + "/wallet/disconnect" + l.query(cur, nil)
}
