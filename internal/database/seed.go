package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/tinyhouse/internal/config"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// SeedUser describes a demo user and the homes they host.
type SeedUser struct {
	Key      string
	Name     string
	Contact  string
	Income   int
	Listings []SeedListing
}

// SeedListing describes a demo home.
type SeedListing struct {
	Title       string
	City        string
	Address     string
	Image       string
	Price       int
	NumOfGuests int
}

// DefaultSeed is the data set inserted by the seed command.
var DefaultSeed = []SeedUser{
	{
		Key: "alice", Name: "Alice Moreau", Contact: "alice@example.com", Income: 182000,
		Listings: []SeedListing{
			{Title: "Cabin by the lake", City: "Annecy", Address: "12 Rue du Lac", Price: 12000, NumOfGuests: 4},
			{Title: "Loft near the old town", City: "Annecy", Address: "3 Quai Perrière", Price: 9500, NumOfGuests: 2},
			{Title: "Mountain chalet", City: "Chamonix", Address: "88 Route des Praz", Price: 21000, NumOfGuests: 8},
			{Title: "Studio with balcony", City: "Lyon", Address: "41 Rue Mercière", Price: 7000, NumOfGuests: 2},
			{Title: "Riverside apartment", City: "Lyon", Address: "5 Quai Saint-Antoine", Price: 11000, NumOfGuests: 3},
		},
	},
	{
		Key: "bob", Name: "Bob Okafor", Contact: "bob@example.com", Income: 0,
	},
}

// Seed inserts users and listings, then books every listing once for each
// user who does not host it.
func Seed(ctx context.Context, conn DBConnection, cfg config.Provider, users []SeedUser) error {
	exec, err := NewClient[any](conn, cfg)
	if err != nil {
		return err
	}

	type seededListing struct {
		rid  surrealmodels.RecordID
		host string
	}
	var listings []seededListing

	for _, u := range users {
		err := exec.Execute(ctx, "UPSERT $id CONTENT $data", map[string]any{
			"id": userRID(u.Key),
			"data": map[string]any{
				"name":    u.Name,
				"avatar":  fmt.Sprintf("https://api.dicebear.com/9.x/initials/svg?seed=%s", u.Key),
				"contact": u.Contact,
				"income":  u.Income,
			},
		})
		if err != nil {
			return WrapError(err, "seed user "+u.Key)
		}

		for _, l := range u.Listings {
			rid := surrealmodels.NewRecordID(listingTable, uuid.NewString())
			err := exec.Execute(ctx, "CREATE $id CONTENT $data", map[string]any{
				"id": rid,
				"data": map[string]any{
					"title":       l.Title,
					"image":       l.Image,
					"address":     l.Address,
					"city":        l.City,
					"price":       l.Price,
					"numOfGuests": l.NumOfGuests,
					"host":        userRID(u.Key),
				},
			})
			if err != nil {
				return WrapError(err, "seed listing "+l.Title)
			}
			listings = append(listings, seededListing{rid: rid, host: u.Key})
		}
	}

	checkIn := time.Now().UTC().Truncate(24 * time.Hour)
	for _, u := range users {
		for i, l := range listings {
			if l.host == u.Key {
				continue
			}
			start := checkIn.AddDate(0, 0, 7*i)
			err := exec.Execute(ctx, "CREATE $id CONTENT $data", map[string]any{
				"id": surrealmodels.NewRecordID(bookingTable, uuid.NewString()),
				"data": map[string]any{
					"listing":  l.rid,
					"tenant":   userRID(u.Key),
					"checkIn":  surrealmodels.CustomDateTime{Time: start},
					"checkOut": surrealmodels.CustomDateTime{Time: start.AddDate(0, 0, 3)},
				},
			})
			if err != nil {
				return WrapError(err, "seed booking for "+u.Key)
			}
		}
	}

	slog.InfoContext(ctx, "Seed data inserted", "event", "db_seed_success", "users", len(users), "listings", len(listings))
	return nil
}
