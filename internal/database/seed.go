package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/wayfarerhq/footprints/internal/model"
	"github.com/wayfarerhq/footprints/internal/repository"
)

// demoLocations are the named real-world places inserted by Seed.
var demoLocations = []struct {
	name    string
	address string
	locType string
}{
	{"Eiffel Tower", "Champ de Mars, Paris", model.LocationTypeAttraction},
	{"Louvre Museum", "Rue de Rivoli, Paris", model.LocationTypeAttraction},
	{"Shinjuku Station", "Shinjuku, Tokyo", model.LocationTypeTransport},
	{"Tsukiji Outer Market", "Chuo City, Tokyo", model.LocationTypeRestaurant},
	{"Golden Gate Bridge", "San Francisco", model.LocationTypeAttraction},
	{"Grand Central Terminal", "89 E 42nd St, New York", model.LocationTypeTransport},
	{"Katz's Delicatessen", "205 E Houston St, New York", model.LocationTypeRestaurant},
}

// Seed fills a freshly initialized store with demo data: a fixed set
// of users, real-world locations, and randomized trips and footprints
// drawn from them. It goes through the repositories so the seeded
// rows pass the same validation as request traffic. Intended for
// development/demo mode only.
func Seed(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	users := repository.NewUserRepo(db)
	trips := repository.NewTripRepo(db)
	locations := repository.NewLocationRepo(db)
	footprints := repository.NewFootprintRepo(db)

	userIDs := make([]int64, 0, 7)
	for i := 0; i < 7; i++ {
		id, err := users.Create(ctx,
			fmt.Sprintf("user_%d", i),
			fmt.Sprintf("user_%d@example.com", i))
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	locationIDs := make([]int64, 0, len(demoLocations))
	for _, l := range demoLocations {
		addr := l.address
		id, err := locations.Create(ctx, l.name, &addr, l.locType)
		if err != nil {
			return fmt.Errorf("seed locations: %w", err)
		}
		locationIDs = append(locationIDs, id)
	}

	for i := 0; i < 5; i++ {
		start := time.Now().AddDate(0, 0, -rand.Intn(365))
		end := start.AddDate(0, 0, 1+rand.Intn(13))
		participants := pick(userIDs, 1+rand.Intn(4))
		visited := pick(locationIDs, rand.Intn(4))
		if _, err := trips.Create(ctx, participants,
			start.Format("2006-01-02"), end.Format("2006-01-02"), visited); err != nil {
			return fmt.Errorf("seed trips: %w", err)
		}
	}

	for i := 0; i < 4; i++ {
		content := fmt.Sprintf("Notes from visit #%d.", i+1)
		if _, err := footprints.Create(ctx,
			userIDs[rand.Intn(len(userIDs))],
			fmt.Sprintf("Journal entry %d", i+1),
			&content,
			locationIDs[rand.Intn(len(locationIDs))]); err != nil {
			return fmt.Errorf("seed footprints: %w", err)
		}
	}

	logger.Info("seeded demo data",
		zap.Int("users", len(userIDs)),
		zap.Int("locations", len(locationIDs)))
	return nil
}

// pick returns up to n randomly chosen distinct ids.
func pick(ids []int64, n int) []int64 {
	if n > len(ids) {
		n = len(ids)
	}
	shuffled := make([]int64, len(ids))
	copy(shuffled, ids)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
