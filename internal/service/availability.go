package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/timeslot"
)

const dateLayout = "2006-01-02"

// AvailabilityService — оракул доступности: чистое чтение, без блокировок.
type AvailabilityService struct {
	bookingRepo ports.BookingRepo
	catalog     []string
}

func NewAvailabilityService(bookingRepo ports.BookingRepo, catalog []string) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		catalog:     catalog,
	}
}

// SlotStatuses отдаёт статус каждого слота каталога. Пустой ground/date/sport —
// не ошибка: клиент ещё не выбрал все три поля, все слоты уходят как freeze,
// чтобы UI не давал отправить заявку.
func (s *AvailabilityService) SlotStatuses(ctx context.Context, ground, date, sport string) ([]domain.SlotStatus, error) {
	if ground == "" || date == "" || sport == "" {
		res := make([]domain.SlotStatus, 0, len(s.catalog))
		for _, slot := range s.catalog {
			res = append(res, domain.SlotStatus{Time: slot, Status: domain.SlotStateFreeze})
		}
		return res, nil
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", domain.ErrValidation)
	}

	booked, err := s.bookingRepo.ListApprovedSlots(ctx, day, sport)
	if err != nil {
		return nil, fmt.Errorf("list approved slots: %w", err)
	}

	res := make([]domain.SlotStatus, 0, len(s.catalog))
	for _, slot := range s.catalog {
		status := domain.SlotStateAvailable
		if r, ok := timeslot.ParseRange(slot); ok && timeslot.AnyOverlaps(r, booked) {
			status = domain.SlotStateBooked
		}
		res = append(res, domain.SlotStatus{Time: slot, Status: status})
	}

	return res, nil
}
