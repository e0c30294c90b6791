package usecase

import (
	"context"
	"fmt"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	List(ctx context.Context, start, end time.Time) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

// Create inserts a confirmed booking unless its interval intersects an
// existing non-cancelled one. The conflict check and the insert run in
// the same transaction so two concurrent creates cannot both pass the
// check.
func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}

	packageType := req.PackageType
	if packageType == "" {
		packageType = "Standard"
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ChildName:     optional(req.ChildName),
		ChildAge:      req.ChildAge,
		PackageType:   packageType,
		DepositAmount: req.DepositAmount,
		Notes:         optional(req.Notes),
		Status:        entity.BookingStatusConfirmed,
	}

	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	conflict, err := s.repo.Booking.HasConflictTx(ctx, tx, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, fmt.Errorf("%w: time slot overlaps with an existing booking", ErrConflict)
	}

	if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer", booking.CustomerName),
		zap.Time("start", booking.StartTime),
		zap.Time("end", booking.EndTime),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Cancel flips the booking to cancelled; the row is kept for history
// and no longer participates in overlap checks.
func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID", ErrValidation)
	}

	return s.repo.Booking.Cancel(ctx, id)
}

func (s *bookingService) List(ctx context.Context, start, end time.Time) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return response.BookingsToResponse(bookings), nil
}
