package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ApprovalService оборачивает транзакцию резолвера и рассылает уведомления
// уже после коммита: сбой доставки не откатывает принятое решение.
type ApprovalService struct {
	bookingRepo ports.BookingRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewApprovalService(
	bookingRepo ports.BookingRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *ApprovalService {
	return &ApprovalService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *ApprovalService) Approve(ctx context.Context, id string) (*domain.ApprovalResult, error) {
	res, err := s.bookingRepo.Approve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	s.logger.Info("slot resolved",
		logger.String("acted_on", id),
		logger.String("winner_id", res.Winner.ID),
		logger.String("time_slot", res.Winner.TimeSlot),
		logger.Int("auto_rejected", len(res.AutoRejected)),
	)

	go s.notifyResolved(context.WithoutCancel(ctx), res)

	return res, nil
}

func (s *ApprovalService) notifyResolved(ctx context.Context, res *domain.ApprovalResult) {
	if res.Promoted {
		s.notifier.NotifyBookingApproved(ctx, res.Winner)
	}
	for _, b := range res.AutoRejected {
		s.notifier.NotifyBookingRejected(ctx, b)
	}
}

func (s *ApprovalService) Reject(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.Reject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	s.logger.Info("booking rejected",
		logger.String("booking_id", b.ID),
		logger.String("student_email", b.StudentEmail),
	)

	go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), b)

	return b, nil
}

// SweepExpired отклоняет Pending-заявки с прошедшей датой. Дёргается
// планировщиком.
func (s *ApprovalService) SweepExpired(ctx context.Context) ([]*domain.Booking, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	expired, err := s.bookingRepo.RejectExpired(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("sweep expired: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("expired pending bookings rejected",
			logger.Int("count", len(expired)),
		)

		go func(bookings []*domain.Booking) {
			ctx := context.WithoutCancel(ctx)
			for _, b := range bookings {
				s.notifier.NotifyBookingExpired(ctx, b)
			}
		}(expired)
	}

	return expired, nil
}
