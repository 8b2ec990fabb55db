package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func newID() string {
	return uuid.New().String()
}

type AllotmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAllotmentRepo(db *dbpg.DB) *AllotmentRepository {
	return &AllotmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// List — отчётная выборка выделений; date == nil отдаёт все записи.
func (r *AllotmentRepository) List(ctx context.Context, date *time.Time) ([]*domain.Allotment, error) {
	query := `SELECT id, booking_id, date, ground, time_slot,
					 allotted_to, roll_number, purpose, players, updated_at
			  FROM allotments
			  WHERE ($1::date IS NULL OR date = $1)
			  ORDER BY date, ground, time_slot`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return nil, fmt.Errorf("list allotments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Allotment
	for rows.Next() {
		var a domain.Allotment
		if err = rows.Scan(
			&a.ID, &a.BookingID, &a.Date, &a.Ground, &a.TimeSlot,
			&a.AllottedTo, &a.RollNumber, &a.Purpose, &a.Players, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan allotment: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
