package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/metrics"
	"github.com/nfrund/tinyhouse/internal/payments"
)

// PageLimit is the number of listings and bookings shown per page.
const PageLimit = 4

// Variables are the inputs of a user query.
type Variables struct {
	ID           string
	Limit        int
	ListingsPage int
	BookingsPage int
}

// QueryResult is what the page renders: either still loading, failed, or
// resolved to a user.
type QueryResult struct {
	User    *domain.User
	Loading bool
	Err     error
}

// Service resolves user queries and wallet changes.
type Service struct {
	repo      domain.UserRepository
	connector payments.Connector
	metrics   *metrics.Metrics
}

// NewService creates a Service. connector and m may be nil.
func NewService(repo domain.UserRepository, connector payments.Connector, m *metrics.Metrics) *Service {
	return &Service{repo: repo, connector: connector, metrics: m}
}

// Query loads the user with one page of listings. Bookings and income are
// only loaded when the viewer is the user; otherwise they are left nil.
func (s *Service) Query(ctx context.Context, viewer domain.Viewer, vars Variables) (*domain.User, error) {
	if vars.ID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if vars.Limit < 1 || vars.ListingsPage < 1 || vars.BookingsPage < 1 {
		return nil, fmt.Errorf("%w: limit and pages must be positive", domain.ErrInvalidInput)
	}

	start := time.Now()
	defer s.metrics.ObserveQuery(start)

	user, err := s.repo.FindByID(ctx, vars.ID)
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", vars.ID, err)
	}

	listings, err := s.repo.ListListings(ctx, user.ID, vars.Limit, vars.ListingsPage)
	if err != nil {
		return nil, fmt.Errorf("list listings for %q: %w", user.ID, err)
	}
	user.Listings = listings

	if !viewer.IsUser(user.ID) {
		user.Income = nil
		user.Bookings = nil
		return user, nil
	}

	bookings, err := s.repo.ListBookings(ctx, user.ID, vars.Limit, vars.BookingsPage)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %q: %w", user.ID, err)
	}
	user.Bookings = bookings
	return user, nil
}

// Fetch runs Query and packs the outcome into a QueryResult.
func (s *Service) Fetch(ctx context.Context, viewer domain.Viewer, vars Variables) QueryResult {
	user, err := s.Query(ctx, viewer, vars)
	if err != nil {
		return QueryResult{Err: err}
	}
	return QueryResult{User: user}
}

// ConnectWallet exchanges a Stripe authorization code and stores the
// resulting account on the viewer's user. It returns the updated viewer.
func (s *Service) ConnectWallet(ctx context.Context, viewer domain.Viewer, code string) (domain.Viewer, error) {
	updated, err := s.connectWallet(ctx, viewer, code)
	s.metrics.ObserveWallet("connect", err == nil)
	return updated, err
}

func (s *Service) connectWallet(ctx context.Context, viewer domain.Viewer, code string) (domain.Viewer, error) {
	if !viewer.Authenticated() {
		return viewer, fmt.Errorf("%w: viewer is not signed in", domain.ErrForbidden)
	}
	if s.connector == nil {
		return viewer, fmt.Errorf("%w: no payment connector configured", domain.ErrWalletExchange)
	}

	walletID, err := s.connector.Connect(ctx, code)
	if err != nil {
		return viewer, err
	}
	user, err := s.repo.SetWallet(ctx, viewer.ID, &walletID)
	if err != nil {
		return viewer, fmt.Errorf("store wallet for %q: %w", viewer.ID, err)
	}
	viewer.HasWallet = user.HasWallet
	return viewer, nil
}

// DisconnectWallet clears the wallet of userID. Only the user themself may
// do this.
func (s *Service) DisconnectWallet(ctx context.Context, viewer domain.Viewer, userID string) (domain.Viewer, error) {
	if !viewer.Authenticated() || !viewer.IsUser(userID) {
		return viewer, fmt.Errorf("%w: only the user can disconnect their wallet", domain.ErrForbidden)
	}

	user, err := s.repo.SetWallet(ctx, viewer.ID, nil)
	s.metrics.ObserveWallet("disconnect", err == nil)
	if err != nil {
		return viewer, fmt.Errorf("clear wallet for %q: %w", viewer.ID, err)
	}
	viewer.HasWallet = user.HasWallet
	return viewer, nil
}

// isForbidden reports whether err should be answered with 403.
func isForbidden(err error) bool {
	return errors.Is(err, domain.ErrForbidden)
}
