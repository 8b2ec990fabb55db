package domain

import "sort"

// AllotmentDecision — результат разбора конкурирующего набора заявок на один
// слот. Winner не обязан совпадать с заявкой, по которой кликнул админ:
// клик лишь указывает на слот, побеждает самая ранняя Pending-заявка.
type AllotmentDecision struct {
	Winner       *Booking
	AutoRejected []*Booking

	// Promote — победителя нужно перевести Pending -> Approved.
	Promote bool
	// Materialize — нужно создать/обновить запись Allotment по победителю.
	Materialize bool
}

// ResolveAllotment выбирает FCFS-победителя среди конкурирующего набора.
// competitors — все заявки с теми же date/sport/time_slot, включая target.
// Если Pending-заявок не осталось, target считается победителем сам по себе:
// для Approved это освежение записи о слоте, для Rejected — чистый no-op.
func ResolveAllotment(target *Booking, competitors []*Booking) AllotmentDecision {
	var pending []*Booking
	for _, b := range competitors {
		if b.Status == BookingStatusPending {
			pending = append(pending, b)
		}
	}

	if len(pending) == 0 {
		return AllotmentDecision{
			Winner:      target,
			Materialize: target.Status == BookingStatusApproved,
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		if pending[i].CreatedAt.Equal(pending[j].CreatedAt) {
			return pending[i].ID < pending[j].ID
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	return AllotmentDecision{
		Winner:       pending[0],
		AutoRejected: pending[1:],
		Promote:      true,
		Materialize:  true,
	}
}
