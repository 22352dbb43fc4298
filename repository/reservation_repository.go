package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"mk-watch-mods/models"
)

// ReservationRepository handles database operations for reservation requests
type ReservationRepository struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(conn *sql.DB, log *zap.SugaredLogger) *ReservationRepository {
	return &ReservationRepository{db: conn, log: log}
}

// Ensure ReservationRepository implements ReservationRepositoryInterface
var _ ReservationRepositoryInterface = (*ReservationRepository)(nil)

// Insert stores a reservation request
func (r *ReservationRepository) Insert(ctx context.Context, reservation *models.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_name, customer_contact, model_name, collection_name, status, notify_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		reservation.ID,
		reservation.CustomerName,
		reservation.CustomerContact,
		reservation.ModelName,
		reservation.CollectionName,
		reservation.Status,
		sql.NullString{String: reservation.NotifyError, Valid: reservation.NotifyError != ""},
		reservation.CreatedAt,
	)
	if err != nil {
		r.log.Errorf("❌ Insert: Error inserting reservation id=%s: %v", reservation.ID, err)
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	r.log.Infof("✅ Insert: Stored reservation id=%s model=%s status=%s", reservation.ID, reservation.ModelName, reservation.Status)
	return nil
}

// ListRecent returns the most recent reservations, newest first
func (r *ReservationRepository) ListRecent(ctx context.Context, limit int) ([]models.Reservation, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, customer_name, customer_contact, model_name, collection_name, status,
		       COALESCE(notify_error, '') AS notify_error, created_at
		FROM reservations
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		var res models.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.CustomerName,
			&res.CustomerContact,
			&res.ModelName,
			&res.CollectionName,
			&res.Status,
			&res.NotifyError,
			&res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}
	return reservations, nil
}
