package ports

import (
	"context"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	ListByStudent(ctx context.Context, email string) ([]*domain.Booking, error)
	ListApprovedSlots(ctx context.Context, date time.Time, sport string) ([]string, error)
	Approve(ctx context.Context, id string) (*domain.ApprovalResult, error)
	Reject(ctx context.Context, id string) (*domain.Booking, error)
	RejectExpired(ctx context.Context, before time.Time) ([]*domain.Booking, error)
	HasRecentApproved(ctx context.Context, emails []string, since time.Time) (bool, error)
}
