package notification

import (
	"context"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports"
)

// Fanout рассылает одно уведомление во все каналы сразу.
type Fanout struct {
	channels []ports.BookingNotifier
}

func NewFanout(channels ...ports.BookingNotifier) *Fanout {
	return &Fanout{channels: channels}
}

func (f *Fanout) NotifyBookingSubmitted(ctx context.Context, b *domain.Booking) {
	for _, c := range f.channels {
		c.NotifyBookingSubmitted(ctx, b)
	}
}

func (f *Fanout) NotifyBookingApproved(ctx context.Context, b *domain.Booking) {
	for _, c := range f.channels {
		c.NotifyBookingApproved(ctx, b)
	}
}

func (f *Fanout) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	for _, c := range f.channels {
		c.NotifyBookingRejected(ctx, b)
	}
}

func (f *Fanout) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	for _, c := range f.channels {
		c.NotifyBookingExpired(ctx, b)
	}
}
