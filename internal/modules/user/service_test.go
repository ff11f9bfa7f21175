package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/metrics"
	"github.com/nfrund/tinyhouse/internal/modules/user"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func vars(id string, listings, bookings int) user.Variables {
	return user.Variables{ID: id, Limit: user.PageLimit, ListingsPage: listings, BookingsPage: bookings}
}

func TestService_Query(t *testing.T) {
	ctx := context.Background()
	owner := domain.Viewer{ID: "alice", DidRequest: true}
	stranger := domain.Viewer{ID: "bob", DidRequest: true}

	t.Run("owner gets listings, bookings and income", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByID", mock.Anything, "alice").Return(alice(), nil)
		repo.On("ListListings", mock.Anything, "alice", 4, 2).Return(listingsPage(5, "Cabin"), nil)
		repo.On("ListBookings", mock.Anything, "alice", 4, 3).Return(bookingsPage(9, "Loft"), nil)

		got, err := user.NewService(repo, nil, nil).Query(ctx, owner, vars("alice", 2, 3))
		require.NoError(t, err)

		require.NotNil(t, got.Listings)
		require.NotNil(t, got.Bookings)
		require.NotNil(t, got.Income)
		assert.Equal(t, 5, got.Listings.Total)
		assert.Equal(t, 9, got.Bookings.Total)
		assert.Equal(t, 182000, *got.Income)
		repo.AssertExpectations(t)
	})

	t.Run("other viewers never see bookings or income", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByID", mock.Anything, "alice").Return(alice(), nil)
		repo.On("ListListings", mock.Anything, "alice", 4, 1).Return(listingsPage(1, "Cabin"), nil)

		for _, viewer := range []domain.Viewer{stranger, {DidRequest: true}} {
			got, err := user.NewService(repo, nil, nil).Query(ctx, viewer, vars("alice", 1, 1))
			require.NoError(t, err)
			assert.NotNil(t, got.Listings)
			assert.Nil(t, got.Bookings)
			assert.Nil(t, got.Income)
		}
		repo.AssertNotCalled(t, "ListBookings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid variables are rejected before any query", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo, nil, nil)

		for _, v := range []user.Variables{
			vars("", 1, 1),
			vars("alice", 0, 1),
			vars("alice", 1, -2),
			{ID: "alice", Limit: 0, ListingsPage: 1, BookingsPage: 1},
		} {
			_, err := svc.Query(ctx, owner, v)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown user is a fetch error", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := user.NewService(repo, nil, nil).Query(ctx, owner, vars("ghost", 1, 1))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "ListListings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("sublist failure fails the query", func(t *testing.T) {
		boom := errors.New("boom")
		repo := new(mockRepo)
		repo.On("FindByID", mock.Anything, "alice").Return(alice(), nil)
		repo.On("ListListings", mock.Anything, "alice", 4, 1).Return(listingsPage(0), nil)
		repo.On("ListBookings", mock.Anything, "alice", 4, 1).Return(nil, boom)

		result := user.NewService(repo, nil, nil).Fetch(ctx, owner, vars("alice", 1, 1))
		assert.ErrorIs(t, result.Err, boom)
		assert.Nil(t, result.User)
		assert.False(t, result.Loading)
	})

	t.Run("query duration is observed", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.New(reg)
		repo := new(mockRepo)
		repo.On("FindByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, _ = user.NewService(repo, nil, m).Query(ctx, owner, vars("ghost", 1, 1))

		families, err := reg.Gather()
		require.NoError(t, err)
		var samples uint64
		for _, mf := range families {
			if mf.GetName() == "tinyhouse_user_query_duration_seconds" {
				samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
			}
		}
		assert.Equal(t, uint64(1), samples)
	})
}

func TestService_ConnectWallet(t *testing.T) {
	ctx := context.Background()
	viewer := domain.Viewer{ID: "alice", DidRequest: true}

	t.Run("stores the account and updates the viewer", func(t *testing.T) {
		repo := new(mockRepo)
		connected := alice()
		repo.On("SetWallet", mock.Anything, "alice", mock.MatchedBy(func(w *string) bool {
			return w != nil && *w == "acct_123"
		})).Return(connected, nil)
		conn := &fakeConnector{accountID: "acct_123"}
		m := metrics.New(prometheus.NewRegistry())

		got, err := user.NewService(repo, conn, m).ConnectWallet(ctx, viewer, "code-1")
		require.NoError(t, err)
		assert.True(t, got.HasWallet)
		assert.Equal(t, "code-1", conn.gotCode)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.WalletChanges.WithLabelValues("connect", "success")))
	})

	t.Run("anonymous viewer is forbidden", func(t *testing.T) {
		_, err := user.NewService(new(mockRepo), &fakeConnector{}, nil).ConnectWallet(ctx, domain.Viewer{}, "code")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("exchange failure leaves the user untouched", func(t *testing.T) {
		repo := new(mockRepo)
		conn := &fakeConnector{err: domain.ErrWalletExchange}

		got, err := user.NewService(repo, conn, nil).ConnectWallet(ctx, viewer, "bad")
		assert.ErrorIs(t, err, domain.ErrWalletExchange)
		assert.Equal(t, viewer, got)
		repo.AssertNotCalled(t, "SetWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing connector", func(t *testing.T) {
		_, err := user.NewService(new(mockRepo), nil, nil).ConnectWallet(ctx, viewer, "code")
		assert.ErrorIs(t, err, domain.ErrWalletExchange)
	})
}

func TestService_DisconnectWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("user disconnects their own wallet", func(t *testing.T) {
		repo := new(mockRepo)
		cleared := alice()
		cleared.HasWallet = false
		repo.On("SetWallet", mock.Anything, "alice", mock.MatchedBy(isNilWallet)).Return(cleared, nil)

		got, err := user.NewService(repo, nil, nil).DisconnectWallet(ctx, domain.Viewer{ID: "alice", HasWallet: true}, "alice")
		require.NoError(t, err)
		assert.False(t, got.HasWallet)
		repo.AssertExpectations(t)
	})

	t.Run("someone else's wallet is forbidden", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo, nil, nil)

		_, err := svc.DisconnectWallet(ctx, domain.Viewer{ID: "bob"}, "alice")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = svc.DisconnectWallet(ctx, domain.Viewer{}, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "SetWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("SetWallet", mock.Anything, "alice", mock.MatchedBy(isNilWallet)).Return(nil, errors.New("db down"))

		viewer := domain.Viewer{ID: "alice", HasWallet: true}
		got, err := user.NewService(repo, nil, nil).DisconnectWallet(ctx, viewer, "alice")
		assert.Error(t, err)
		assert.True(t, got.HasWallet)
	})
}
