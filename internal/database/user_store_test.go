package database

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserStoreTest connects to the test database and seeds one host with
// five listings and one tenant with five bookings.
func setupUserStoreTest(t *testing.T) (*UserStore, SeedUser, SeedUser) {
	t.Helper()

	cfg := testutils.ConfigForTests(t)
	conn := NewConnection(cfg)
	require.NoError(t, conn.Connect(context.Background()), "failed to connect to test database")
	t.Cleanup(func() { _ = conn.Close(context.Background()) })

	host := DefaultSeed[0]
	host.Key = testutils.UniqueKey("host")
	tenant := DefaultSeed[1]
	tenant.Key = testutils.UniqueKey("tenant")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, Seed(ctx, conn, cfg, []SeedUser{host, tenant}))

	t.Cleanup(func() {
		exec, err := NewClient[any](conn, cfg)
		if err != nil {
			return
		}
		for _, key := range []string{host.Key, tenant.Key} {
			params := map[string]any{"user": userRID(key)}
			_ = exec.Execute(context.Background(), "DELETE booking WHERE tenant = $user", params)
			_ = exec.Execute(context.Background(), "DELETE listing WHERE host = $user", params)
			_ = exec.Execute(context.Background(), "DELETE $user", params)
		}
	})

	store, err := NewUserStore(conn, cfg)
	require.NoError(t, err)
	return store, host, tenant
}

func TestUserStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store, host, tenant := setupUserStoreTest(t)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	t.Run("FindByID", func(t *testing.T) {
		u, err := store.FindByID(ctx, host.Key)
		require.NoError(t, err)
		assert.Equal(t, host.Key, u.ID)
		assert.Equal(t, host.Name, u.Name)
		assert.False(t, u.HasWallet)
	})

	t.Run("FindByID unknown user", func(t *testing.T) {
		_, err := store.FindByID(ctx, testutils.UniqueKey("missing"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ListListings paginates", func(t *testing.T) {
		first, err := store.ListListings(ctx, host.Key, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, len(host.Listings), first.Total)
		assert.Len(t, first.Result, 4)

		second, err := store.ListListings(ctx, host.Key, 4, 2)
		require.NoError(t, err)
		assert.Equal(t, len(host.Listings), second.Total)
		assert.Len(t, second.Result, len(host.Listings)-4)
		assert.NotEqual(t, first.Result[0].ID, second.Result[0].ID)
	})

	t.Run("ListBookings fetches listing", func(t *testing.T) {
		page, err := store.ListBookings(ctx, tenant.Key, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, len(host.Listings), page.Total)
		require.NotEmpty(t, page.Result)
		assert.NotEmpty(t, page.Result[0].Listing.Title)
		assert.Equal(t, host.Key, page.Result[0].Listing.HostID)
		assert.True(t, page.Result[0].CheckOut.After(page.Result[0].CheckIn))
	})

	t.Run("ListListings rejects page zero", func(t *testing.T) {
		_, err := store.ListListings(ctx, host.Key, 4, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("SetWallet connects and disconnects", func(t *testing.T) {
		wallet := "acct_test"
		u, err := store.SetWallet(ctx, host.Key, &wallet)
		require.NoError(t, err)
		assert.True(t, u.HasWallet)

		u, err = store.SetWallet(ctx, host.Key, nil)
		require.NoError(t, err)
		assert.False(t, u.HasWallet)
	})
}
