package user_test

import (
	"context"

	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) ListListings(ctx context.Context, hostID string, limit, page int) (*domain.ListingsPage, error) {
	args := m.Called(ctx, hostID, limit, page)
	p, _ := args.Get(0).(*domain.ListingsPage)
	return p, args.Error(1)
}

func (m *mockRepo) ListBookings(ctx context.Context, tenantID string, limit, page int) (*domain.BookingsPage, error) {
	args := m.Called(ctx, tenantID, limit, page)
	p, _ := args.Get(0).(*domain.BookingsPage)
	return p, args.Error(1)
}

func (m *mockRepo) SetWallet(ctx context.Context, id string, walletID *string) (*domain.User, error) {
	args := m.Called(ctx, id, walletID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type fakeConnector struct {
	accountID string
	err       error
	gotCode   string
}

func (f *fakeConnector) Connect(ctx context.Context, code string) (string, error) {
	f.gotCode = code
	return f.accountID, f.err
}

func intPtr(n int) *int { return &n }

// alice returns a fresh copy so tests can't leak mutations into each other.
func alice() *domain.User {
	return &domain.User{
		ID:        "alice",
		Name:      "Alice Moreau",
		Avatar:    "https://example.com/alice.png",
		Contact:   "alice@example.com",
		HasWallet: true,
		Income:    intPtr(182000),
	}
}

func listingsPage(total int, titles ...string) *domain.ListingsPage {
	page := &domain.ListingsPage{Total: total}
	for i, title := range titles {
		page.Result = append(page.Result, domain.Listing{
			ID: title, Title: title, City: "Annecy", Address: "1 Rue", Price: 10000 + i, NumOfGuests: 2, HostID: "alice",
		})
	}
	return page
}

func bookingsPage(total int, titles ...string) *domain.BookingsPage {
	page := &domain.BookingsPage{Total: total}
	for _, title := range titles {
		page.Result = append(page.Result, domain.Booking{
			ID:       "b-" + title,
			Listing:  domain.Listing{ID: title, Title: title, City: "Lyon"},
			TenantID: "alice",
		})
	}
	return page
}

func isNilWallet(w *string) bool { return w == nil }
