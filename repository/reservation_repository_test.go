package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mk-watch-mods/db"
	"mk-watch-mods/models"
	"mk-watch-mods/repository"
)

// openTestDB connects to TEST_DATABASE_URL, skipping when it is not set
func openTestDB(t *testing.T) *repository.ReservationRepository {
	t.Helper()
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	log := zap.NewNop().Sugar()
	conn, err := db.Open(ctx, connStr, log)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.ExecContext(ctx, "TRUNCATE reservations")
	require.NoError(t, err)

	return repository.NewReservationRepository(conn, log)
}

func TestReservationRepository_InsertAndListRecent(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	older := &models.Reservation{
		ID:              uuid.NewString(),
		CustomerName:    "Jane",
		CustomerContact: "jane@example.com",
		ModelName:       "Homage Diver 2",
		CollectionName:  "Homage",
		Status:          models.ReservationNotified,
		CreatedAt:       base,
	}
	newer := &models.Reservation{
		ID:              uuid.NewString(),
		CustomerName:    "Bob",
		CustomerContact: "+65 9123 4567",
		ModelName:       "Mystic Sea 1",
		CollectionName:  "Custom Pieces",
		Status:          models.ReservationNotifyFailed,
		NotifyError:     "mail auth failed: 535",
		CreatedAt:       base.Add(time.Minute),
	}
	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))

	recent, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, newer.ID, recent[0].ID)
	assert.Equal(t, models.ReservationNotifyFailed, recent[0].Status)
	assert.Equal(t, "mail auth failed: 535", recent[0].NotifyError)
	assert.True(t, recent[0].CreatedAt.Equal(newer.CreatedAt))

	assert.Equal(t, older.ID, recent[1].ID)
	assert.Empty(t, recent[1].NotifyError)

	limited, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)
}

func TestReservationRepository_DuplicateID(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	r := &models.Reservation{
		ID:              uuid.NewString(),
		CustomerName:    "Jane",
		CustomerContact: "jane@example.com",
		ModelName:       "Homage Diver 2",
		CollectionName:  "Homage",
		Status:          models.ReservationNotified,
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(ctx, r))
	assert.Error(t, repo.Insert(ctx, r))
}
