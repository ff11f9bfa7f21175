package domain

import (
	"context"
	"time"
)

// User is the aggregate rendered on a user's page. Income and Bookings are
// only populated when the viewer is the user themself.
type User struct {
	ID        string
	Name      string
	Avatar    string
	Contact   string
	HasWallet bool
	Income    *int
	Listings  *ListingsPage
	Bookings  *BookingsPage
}

// Listing is a home published by a host.
type Listing struct {
	ID          string
	Title       string
	Image       string
	Address     string
	City        string
	Price       int // cents per night
	NumOfGuests int
	HostID      string
}

// Booking is a stay reserved by a tenant.
type Booking struct {
	ID       string
	Listing  Listing
	TenantID string
	CheckIn  time.Time
	CheckOut time.Time
}

// ListingsPage is one page of a user's listings along with the overall count.
type ListingsPage struct {
	Total  int
	Result []Listing
}

// BookingsPage is one page of a user's bookings along with the overall count.
type BookingsPage struct {
	Total  int
	Result []Booking
}

// UserRepository defines the contract for user data storage operations.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type UserRepository interface {
	// FindByID returns the user without sublists, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)
	ListListings(ctx context.Context, hostID string, limit, page int) (*ListingsPage, error)
	ListBookings(ctx context.Context, tenantID string, limit, page int) (*BookingsPage, error)
	// SetWallet stores or clears (walletID == nil) the user's payout account.
	SetWallet(ctx context.Context, id string, walletID *string) (*User, error)
}
