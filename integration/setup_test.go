package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"commonhub/internal/db"
	"commonhub/internal/facility"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DSN and migrates it. Without TEST_DSN the
// integration tests are skipped.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("Skipping integration tests: TEST_DSN not set")
	}

	database, err := db.Connect(dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: cannot connect to test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database, "../migrations"))
	cleanDatabase(t, database)
	return database
}

func cleanDatabase(t *testing.T, database *sqlx.DB) {
	t.Helper()
	for _, table := range []string{"bookings", "facilities"} {
		_, err := database.Exec("DELETE FROM " + table)
		require.NoError(t, err, "Failed to clean table "+table)
	}
}

// everyDay opens the facility 08:00-20:00 all week with hourly slots.
func everyDay(capacity, maxActive int) facility.Config {
	hours := facility.WeeklyHours{}
	for _, day := range []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"} {
		hours[day] = &facility.OpeningWindow{
			Open:  facility.MustParseClock("08:00"),
			Close: facility.MustParseClock("20:00"),
		}
	}
	return facility.Config{
		Mode:                facility.ModeSlotBooking,
		OpeningHours:        hours,
		SlotDurationMinutes: 60,
		CapacityPerSlot:     capacity,
		MaxAdvanceDays:      14,
		MaxActiveBookings:   maxActive,
	}
}

func createFacility(t *testing.T, repo facility.Repository, cfg facility.Config) *facility.Facility {
	t.Helper()

	f, err := facility.NewService(repo).CreateFacility(context.Background(), facility.CreateFacilityRequest{
		CommunityID: uuid.NewString(),
		Name:        "Tennis court",
		Config:      cfg,
	})
	require.NoError(t, err)
	return f
}

func tomorrow() time.Time {
	y, m, d := time.Now().UTC().AddDate(0, 0, 1).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
