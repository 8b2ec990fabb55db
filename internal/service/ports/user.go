package ports

import (
	"context"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.StudentUser, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (*domain.StudentUser, error)
	List(ctx context.Context) ([]*domain.StudentUser, error)
}
