package database

import (
	"context"

	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/nfrund/tinyhouse/internal/domain"
)

const (
	selectUserQuery     = "SELECT * FROM $user"
	selectListingsQuery = "SELECT * FROM listing WHERE host = $host ORDER BY id LIMIT $limit START $start"
	countListingsQuery  = "SELECT count() FROM listing WHERE host = $host GROUP ALL"
	selectBookingsQuery = "SELECT * FROM booking WHERE tenant = $tenant ORDER BY checkIn DESC LIMIT $limit START $start FETCH listing"
	countBookingsQuery  = "SELECT count() FROM booking WHERE tenant = $tenant GROUP ALL"
	setWalletQuery      = "UPDATE $user SET walletId = $wallet RETURN AFTER"
	clearWalletQuery    = "UPDATE $user UNSET walletId RETURN AFTER"
)

// UserStore implements domain.UserRepository on SurrealDB.
type UserStore struct {
	users    Client[userRecord]
	listings Client[listingRecord]
	bookings Client[bookingRecord]
	counts   Client[countRecord]
}

// NewUserStore creates a user repository sharing one managed connection.
func NewUserStore(conn DBConnection, cfg config.Provider) (*UserStore, error) {
	users, err := NewClient[userRecord](conn, cfg)
	if err != nil {
		return nil, err
	}
	listings, err := NewClient[listingRecord](conn, cfg)
	if err != nil {
		return nil, err
	}
	bookings, err := NewClient[bookingRecord](conn, cfg)
	if err != nil {
		return nil, err
	}
	counts, err := NewClient[countRecord](conn, cfg)
	if err != nil {
		return nil, err
	}
	return &UserStore{users: users, listings: listings, bookings: bookings, counts: counts}, nil
}

// FindByID retrieves a user by the key part of their record id.
func (s *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, NewDBError(domain.ErrInvalidInput, "user id is required")
	}
	rec, err := s.users.QueryOne(ctx, selectUserQuery, map[string]any{"user": userRID(id)})
	if err != nil {
		return nil, WrapError(err, "find user")
	}
	if rec == nil {
		return nil, notFound("find user")
	}
	return rec.toDomain(), nil
}

// ListListings returns one page of the listings hosted by hostID.
func (s *UserStore) ListListings(ctx context.Context, hostID string, limit, page int) (*domain.ListingsPage, error) {
	if hostID == "" || limit < 1 || page < 1 {
		return nil, NewDBError(domain.ErrInvalidInput, "host id, limit and page are required")
	}
	host := userRID(hostID)

	rows, err := s.listings.Query(ctx, selectListingsQuery, map[string]any{
		"host":  host,
		"limit": limit,
		"start": pageStart(limit, page),
	})
	if err != nil {
		return nil, WrapError(err, "list listings")
	}
	counts, err := s.counts.Query(ctx, countListingsQuery, map[string]any{"host": host})
	if err != nil {
		return nil, WrapError(err, "count listings")
	}

	result := make([]domain.Listing, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return &domain.ListingsPage{Total: firstCount(counts), Result: result}, nil
}

// ListBookings returns one page of the bookings made by tenantID, newest stay first.
func (s *UserStore) ListBookings(ctx context.Context, tenantID string, limit, page int) (*domain.BookingsPage, error) {
	if tenantID == "" || limit < 1 || page < 1 {
		return nil, NewDBError(domain.ErrInvalidInput, "tenant id, limit and page are required")
	}
	tenant := userRID(tenantID)

	rows, err := s.bookings.Query(ctx, selectBookingsQuery, map[string]any{
		"tenant": tenant,
		"limit":  limit,
		"start":  pageStart(limit, page),
	})
	if err != nil {
		return nil, WrapError(err, "list bookings")
	}
	counts, err := s.counts.Query(ctx, countBookingsQuery, map[string]any{"tenant": tenant})
	if err != nil {
		return nil, WrapError(err, "count bookings")
	}

	result := make([]domain.Booking, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return &domain.BookingsPage{Total: firstCount(counts), Result: result}, nil
}

// SetWallet stores the payout account id, or removes it when walletID is nil.
func (s *UserStore) SetWallet(ctx context.Context, id string, walletID *string) (*domain.User, error) {
	if id == "" {
		return nil, NewDBError(domain.ErrInvalidInput, "user id is required")
	}
	query := clearWalletQuery
	params := map[string]any{"user": userRID(id)}
	if walletID != nil {
		query = setWalletQuery
		params["wallet"] = *walletID
	}

	rec, err := s.users.QueryOne(ctx, query, params)
	if err != nil {
		return nil, WrapError(err, "set wallet")
	}
	if rec == nil {
		return nil, notFound("set wallet")
	}
	return rec.toDomain(), nil
}
