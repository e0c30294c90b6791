package usecase

import (
	"context"
	"fmt"

	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/response"

	"go.uber.org/zap"
)

type CustomerService interface {
	Lookup(ctx context.Context, phone string) (*response.CustomerPrefill, error)
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

// Lookup prefills the booking and issue forms from a phone number.
// Cards are the richer source and win; bookings are the fallback and
// carry no birth month.
func (s *customerService) Lookup(ctx context.Context, phone string) (*response.CustomerPrefill, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}

	card, err := s.repo.Card.FindLatestByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if card != nil {
		return &response.CustomerPrefill{
			CustomerName:    card.CustomerName,
			ChildName:       card.ChildName,
			ChildBirthMonth: card.ChildBirthMonth,
		}, nil
	}

	booking, err := s.repo.Booking.FindLatestByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if booking != nil {
		return &response.CustomerPrefill{
			CustomerName: &booking.CustomerName,
			ChildName:    booking.ChildName,
		}, nil
	}

	return nil, nil
}
