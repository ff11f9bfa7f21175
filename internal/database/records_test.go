package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestUserRecord_ToDomain(t *testing.T) {
	rid := userRID("alice")
	wallet := "acct_123"

	t.Run("with wallet", func(t *testing.T) {
		rec := userRecord{ID: &rid, Name: "Alice", WalletID: &wallet, Income: 4200}
		u := rec.toDomain()

		assert.Equal(t, "alice", u.ID)
		assert.True(t, u.HasWallet)
		if assert.NotNil(t, u.Income) {
			assert.Equal(t, 4200, *u.Income)
		}
		assert.Nil(t, u.Listings)
		assert.Nil(t, u.Bookings)
	})

	t.Run("empty wallet id is no wallet", func(t *testing.T) {
		empty := ""
		rec := userRecord{ID: &rid, WalletID: &empty}
		assert.False(t, rec.toDomain().HasWallet)
	})
}

func TestBookingRecord_ToDomain(t *testing.T) {
	bookingID := surrealmodels.NewRecordID(bookingTable, "b1")
	listingID := surrealmodels.NewRecordID(listingTable, "l1")
	host := userRID("alice")
	tenant := userRID("bob")
	in := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rec := bookingRecord{
		ID:       &bookingID,
		Listing:  listingRecord{ID: &listingID, Title: "Cabin", Host: &host, Price: 12000},
		Tenant:   &tenant,
		CheckIn:  &surrealmodels.CustomDateTime{Time: in},
		CheckOut: &surrealmodels.CustomDateTime{Time: in.AddDate(0, 0, 2)},
	}
	b := rec.toDomain()

	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, "bob", b.TenantID)
	assert.Equal(t, "l1", b.Listing.ID)
	assert.Equal(t, "alice", b.Listing.HostID)
	assert.Equal(t, in, b.CheckIn)
	assert.Equal(t, in.AddDate(0, 0, 2), b.CheckOut)
}

func TestPageStart(t *testing.T) {
	assert.Equal(t, 0, pageStart(4, 1))
	assert.Equal(t, 4, pageStart(4, 2))
	assert.Equal(t, 12, pageStart(4, 4))
	assert.Equal(t, 0, pageStart(4, 0))
}

func TestRecordKey(t *testing.T) {
	rid := userRID("alice")
	assert.Equal(t, "alice", recordKey(&rid))
	assert.Equal(t, "", recordKey(nil))
}

func TestFirstCount(t *testing.T) {
	assert.Equal(t, 0, firstCount(nil))
	assert.Equal(t, 7, firstCount([]countRecord{{Count: 7}}))
}
