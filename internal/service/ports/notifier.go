package ports

import (
	"context"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingSubmitted(ctx context.Context, b *domain.Booking)
	NotifyBookingApproved(ctx context.Context, b *domain.Booking)
	NotifyBookingRejected(ctx context.Context, b *domain.Booking)
	NotifyBookingExpired(ctx context.Context, b *domain.Booking)
}
