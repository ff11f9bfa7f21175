package database

import (
	"fmt"

	"github.com/nfrund/tinyhouse/internal/domain"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Table names.
const (
	userTable    = "user"
	listingTable = "listing"
	bookingTable = "booking"
)

// userRecord is the stored shape of a user.
type userRecord struct {
	ID       *surrealmodels.RecordID `json:"id,omitempty"`
	Name     string                  `json:"name"`
	Avatar   string                  `json:"avatar"`
	Contact  string                  `json:"contact"`
	WalletID *string                 `json:"walletId,omitempty"`
	Income   int                     `json:"income"`
}

type listingRecord struct {
	ID          *surrealmodels.RecordID `json:"id,omitempty"`
	Title       string                  `json:"title"`
	Image       string                  `json:"image"`
	Address     string                  `json:"address"`
	City        string                  `json:"city"`
	Price       int                     `json:"price"`
	NumOfGuests int                     `json:"numOfGuests"`
	Host        *surrealmodels.RecordID `json:"host"`
}

// bookingRecord is read with FETCH listing, so the listing is embedded.
type bookingRecord struct {
	ID       *surrealmodels.RecordID       `json:"id,omitempty"`
	Listing  listingRecord                 `json:"listing"`
	Tenant   *surrealmodels.RecordID       `json:"tenant"`
	CheckIn  *surrealmodels.CustomDateTime `json:"checkIn"`
	CheckOut *surrealmodels.CustomDateTime `json:"checkOut"`
}

type countRecord struct {
	Count int `json:"count"`
}

func userRID(id string) surrealmodels.RecordID {
	return surrealmodels.NewRecordID(userTable, id)
}

// recordKey returns the key part of a record id ("user:abc" -> "abc").
func recordKey(rid *surrealmodels.RecordID) string {
	if rid == nil || rid.ID == nil {
		return ""
	}
	return fmt.Sprint(rid.ID)
}

func (r *userRecord) toDomain() *domain.User {
	income := r.Income
	return &domain.User{
		ID:        recordKey(r.ID),
		Name:      r.Name,
		Avatar:    r.Avatar,
		Contact:   r.Contact,
		HasWallet: r.WalletID != nil && *r.WalletID != "",
		Income:    &income,
	}
}

func (r *listingRecord) toDomain() domain.Listing {
	return domain.Listing{
		ID:          recordKey(r.ID),
		Title:       r.Title,
		Image:       r.Image,
		Address:     r.Address,
		City:        r.City,
		Price:       r.Price,
		NumOfGuests: r.NumOfGuests,
		HostID:      recordKey(r.Host),
	}
}

func (r *bookingRecord) toDomain() domain.Booking {
	b := domain.Booking{
		ID:       recordKey(r.ID),
		Listing:  r.Listing.toDomain(),
		TenantID: recordKey(r.Tenant),
	}
	if r.CheckIn != nil {
		b.CheckIn = r.CheckIn.Time
	}
	if r.CheckOut != nil {
		b.CheckOut = r.CheckOut.Time
	}
	return b
}

// pageStart converts a 1-based page into a row offset.
func pageStart(limit, page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

func firstCount(rows []countRecord) int {
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Count
}
