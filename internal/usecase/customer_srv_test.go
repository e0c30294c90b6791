package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type fakeCardRepo struct {
	latestByPhone *entity.PunchCard
}

func (f *fakeCardRepo) CreateTx(ctx context.Context, tx pgx.Tx, card *entity.PunchCard) error {
	return nil
}

func (f *fakeCardRepo) ExistsByCodeTx(ctx context.Context, tx pgx.Tx, code string) (bool, error) {
	return false, nil
}

func (f *fakeCardRepo) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.PunchCard, error) {
	return nil, nil
}

func (f *fakeCardRepo) ApplyRedemptionTx(ctx context.Context, tx pgx.Tx, card *entity.PunchCard) error {
	return nil
}

func (f *fakeCardRepo) ActivateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, validFrom time.Time) error {
	return nil
}

func (f *fakeCardRepo) Search(ctx context.Context, query string) ([]*entity.PunchCard, error) {
	return nil, nil
}

func (f *fakeCardRepo) FindRecent(ctx context.Context, limit int) ([]*entity.PunchCard, error) {
	return nil, nil
}

func (f *fakeCardRepo) FindLatestByPhone(ctx context.Context, phone string) (*entity.PunchCard, error) {
	return f.latestByPhone, nil
}

type fakeBookingRepo struct {
	latestByPhone *entity.Booking
}

func (f *fakeBookingRepo) HasConflictTx(ctx context.Context, tx pgx.Tx, start, end time.Time) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeBookingRepo) FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindLatestByPhone(ctx context.Context, phone string) (*entity.Booking, error) {
	return f.latestByPhone, nil
}

func TestLookupPrefersCard(t *testing.T) {
	name := "Jane Doe"
	child := "Sam"
	month := "2021-06"

	repo := &repository.Repository{
		Card: &fakeCardRepo{latestByPhone: &entity.PunchCard{
			CustomerName:    &name,
			ChildName:       &child,
			ChildBirthMonth: &month,
		}},
		Booking: &fakeBookingRepo{latestByPhone: &entity.Booking{CustomerName: "Someone Else"}},
	}
	service := NewCustomerService(repo, zap.NewNop())

	prefill, err := service.Lookup(context.Background(), "555-0101")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if prefill == nil || *prefill.CustomerName != "Jane Doe" {
		t.Fatalf("expected card data, got %+v", prefill)
	}
	if prefill.ChildBirthMonth == nil || *prefill.ChildBirthMonth != "2021-06" {
		t.Fatalf("birth month lost: %+v", prefill)
	}
}

func TestLookupFallsBackToBooking(t *testing.T) {
	child := "Sam"
	repo := &repository.Repository{
		Card: &fakeCardRepo{},
		Booking: &fakeBookingRepo{latestByPhone: &entity.Booking{
			CustomerName: "Jane Doe",
			ChildName:    &child,
		}},
	}
	service := NewCustomerService(repo, zap.NewNop())

	prefill, err := service.Lookup(context.Background(), "555-0101")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if prefill == nil || *prefill.CustomerName != "Jane Doe" {
		t.Fatalf("expected booking data, got %+v", prefill)
	}
	if prefill.ChildBirthMonth != nil {
		t.Fatal("bookings carry no birth month")
	}
}

func TestLookupUnknownPhone(t *testing.T) {
	repo := &repository.Repository{
		Card:    &fakeCardRepo{},
		Booking: &fakeBookingRepo{},
	}
	service := NewCustomerService(repo, zap.NewNop())

	prefill, err := service.Lookup(context.Background(), "555-0101")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if prefill != nil {
		t.Fatalf("expected nil for unknown phone, got %+v", prefill)
	}
}

func TestLookupRequiresPhone(t *testing.T) {
	repo := &repository.Repository{Card: &fakeCardRepo{}, Booking: &fakeBookingRepo{}}
	service := NewCustomerService(repo, zap.NewNop())

	_, err := service.Lookup(context.Background(), "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
