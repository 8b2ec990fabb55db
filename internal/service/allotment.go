package service

import (
	"context"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports"
)

type AllotmentService struct {
	repo ports.AllotmentRepo
}

func NewAllotmentService(repo ports.AllotmentRepo) *AllotmentService {
	return &AllotmentService{repo: repo}
}

func (s *AllotmentService) List(ctx context.Context, date *time.Time) ([]*domain.Allotment, error) {
	return s.repo.List(ctx, date)
}
