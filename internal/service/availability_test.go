package service

import (
	"context"
	"testing"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCatalog = []string{
	"07:00 AM - 09:00 AM",
	"09:00 AM - 11:00 AM",
	"04:00 PM - 06:00 PM",
}

func TestAvailability_Freeze_WhenInputsMissing(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(bookingRepo, testCatalog)

	cases := []struct{ ground, date, sport string }{
		{"", "2025-05-01", "Football"},
		{"Ground A", "", "Football"},
		{"Ground A", "2025-05-01", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		res, err := svc.SlotStatuses(context.Background(), tc.ground, tc.date, tc.sport)

		require.NoError(t, err)
		require.Len(t, res, len(testCatalog))
		for i, s := range res {
			assert.Equal(t, testCatalog[i], s.Time)
			assert.Equal(t, domain.SlotStateFreeze, s.Status)
		}
	}
	// ни одного обращения к репозиторию
	bookingRepo.AssertNotCalled(t, "ListApprovedSlots")
}

func TestAvailability_OverlapMarksBooked(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := []string{"08:00 AM - 10:00 AM", "09:00 AM - 11:00 AM"}
	svc := NewAvailabilityService(bookingRepo, catalog)

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.EXPECT().ListApprovedSlots(mock.Anything, day, "Football").
		Return([]string{"07:00 AM - 09:00 AM"}, nil)

	res, err := svc.SlotStatuses(context.Background(), "Ground A", "2025-05-01", "Football")

	require.NoError(t, err)
	require.Len(t, res, 2)
	// 07-09 пересекает 08-10, но лишь касается 09-11
	assert.Equal(t, domain.SlotStateBooked, res[0].Status)
	assert.Equal(t, domain.SlotStateAvailable, res[1].Status)
}

func TestAvailability_ExactSlotBooked(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(bookingRepo, testCatalog)

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.EXPECT().ListApprovedSlots(mock.Anything, day, "Cricket").
		Return([]string{"04:00 PM - 06:00 PM"}, nil)

	res, err := svc.SlotStatuses(context.Background(), "Ground B", "2025-05-01", "Cricket")

	require.NoError(t, err)
	assert.Equal(t, domain.SlotStateAvailable, res[0].Status)
	assert.Equal(t, domain.SlotStateAvailable, res[1].Status)
	assert.Equal(t, domain.SlotStateBooked, res[2].Status)
}

func TestAvailability_UnparseableStoredSlotIgnored(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(bookingRepo, testCatalog)

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.EXPECT().ListApprovedSlots(mock.Anything, day, "Football").
		Return([]string{"whole day", "???"}, nil)

	res, err := svc.SlotStatuses(context.Background(), "Ground A", "2025-05-01", "Football")

	require.NoError(t, err)
	for _, s := range res {
		assert.Equal(t, domain.SlotStateAvailable, s.Status)
	}
}

func TestAvailability_InvalidDate(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(bookingRepo, testCatalog)

	_, err := svc.SlotStatuses(context.Background(), "Ground A", "01-05-2025", "Football")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailability_NoApprovedBookings(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(bookingRepo, testCatalog)

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.EXPECT().ListApprovedSlots(mock.Anything, day, "Football").Return(nil, nil)

	res, err := svc.SlotStatuses(context.Background(), "Ground A", "2025-05-01", "Football")

	require.NoError(t, err)
	for _, s := range res {
		assert.Equal(t, domain.SlotStateAvailable, s.Status)
	}
}
