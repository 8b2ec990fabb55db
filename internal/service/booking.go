package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/timeslot"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Срок кулдауна: организатор или игрок с утверждённой заявкой на дату
// не раньше "вчера" новую заявку подать не может.
const cooldownWindow = 24 * time.Hour

type BookingService struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	catalog     []string
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	catalog []string,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		catalog:     catalog,
		logger:      logger,
	}
}

func (s *BookingService) Submit(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	emails := input.Players
	if len(emails) == 0 {
		emails = []string{input.Organizer.Email}
	}

	players, err := s.resolvePlayers(ctx, emails)
	if err != nil {
		return nil, err
	}

	// кулдаун: лучшая попытка относительно конкурирующих одобрений
	since := time.Now().UTC().Add(-cooldownWindow).Truncate(24 * time.Hour)
	all := append([]string{input.Organizer.Email}, emails...)
	busy, err := s.bookingRepo.HasRecentApproved(ctx, all, since)
	if err != nil {
		return nil, fmt.Errorf("cooldown check: %w", err)
	}
	if busy {
		return nil, domain.ErrCooldown
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		StudentName:     input.Organizer.Name,
		StudentEmail:    input.Organizer.Email,
		RollNumber:      input.Organizer.RollNumber,
		Ground:          input.Ground,
		Sport:           input.Sport,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		Purpose:         input.Purpose,
		Equipment:       input.Equipment,
		NumberOfPlayers: len(players),
		Status:          domain.BookingStatusPending,
		Players:         players,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking submitted",
		logger.String("booking_id", booking.ID),
		logger.String("student_email", booking.StudentEmail),
		logger.String("sport", booking.Sport),
		logger.String("time_slot", booking.TimeSlot),
	)

	go s.notifier.NotifyBookingSubmitted(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) validate(input domain.CreateBookingInput) error {
	if input.Organizer.Email == "" {
		return fmt.Errorf("%w: organizer email is required", domain.ErrValidation)
	}
	if input.Ground == "" {
		return fmt.Errorf("%w: ground is required", domain.ErrValidation)
	}
	if input.Sport == "" {
		return fmt.Errorf("%w: sport is required", domain.ErrValidation)
	}
	if input.Purpose == "" {
		return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.Date.Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		return fmt.Errorf("%w: date must not be in the past", domain.ErrValidation)
	}
	if !timeslot.InCatalog(input.TimeSlot, s.catalog) {
		return fmt.Errorf("%w: unknown time slot", domain.ErrValidation)
	}
	if len(input.Players) > 0 && input.NumberOfPlayers != len(input.Players) {
		return fmt.Errorf("%w: player list length must match number_of_players", domain.ErrValidation)
	}
	// без списка игроков участником считается только организатор
	if len(input.Players) == 0 && input.NumberOfPlayers > 1 {
		return fmt.Errorf("%w: number_of_players requires a matching player list", domain.ErrValidation)
	}
	return nil
}

func (s *BookingService) resolvePlayers(ctx context.Context, emails []string) ([]domain.Player, error) {
	players := make([]domain.Player, 0, len(emails))
	for _, email := range emails {
		profile, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrStudentNotFound) {
				return nil, fmt.Errorf("%w: unknown player email %s", domain.ErrValidation, email)
			}
			return nil, fmt.Errorf("resolve player %s: %w", email, err)
		}
		players = append(players, domain.Player{
			ID:       uuid.New().String(),
			Email:    profile.Email,
			Name:     profile.Name,
			Branch:   profile.Branch,
			Year:     profile.Year,
			Division: profile.Division,
		})
	}
	return players, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByStudent(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByStudent(ctx, email)
}

func (s *BookingService) List(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, status)
}
