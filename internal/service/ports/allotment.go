package ports

import (
	"context"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
)

type AllotmentRepo interface {
	List(ctx context.Context, date *time.Time) ([]*domain.Allotment, error)
}
