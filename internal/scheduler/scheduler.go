package scheduler

import (
	"context"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	SweepExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler периодически закрывает Pending-заявки с прошедшей датой,
// чтобы они не висели в очереди администратора.
type Scheduler struct {
	approvalService bookingSweeper
	interval        time.Duration
	logger          logger.Logger
}

func New(
	approvalService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		approvalService: approvalService,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.approvalService.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("pending booking expired",
			logger.String("booking_id", b.ID),
			logger.String("student_email", b.StudentEmail),
			logger.String("time_slot", b.TimeSlot),
		)
	}
}
