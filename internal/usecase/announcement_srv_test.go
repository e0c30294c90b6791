package usecase

import (
	"context"
	"testing"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeAnnouncementRepo struct {
	latest  *entity.Announcement
	created *entity.Announcement
	toggled *bool
}

func (f *fakeAnnouncementRepo) Create(ctx context.Context, announcement *entity.Announcement) error {
	f.created = announcement
	return nil
}

func (f *fakeAnnouncementRepo) UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	f.toggled = &isActive
	return nil
}

func (f *fakeAnnouncementRepo) FindLatest(ctx context.Context) (*entity.Announcement, error) {
	return f.latest, nil
}

func (f *fakeAnnouncementRepo) FindLatestActive(ctx context.Context) (*entity.Announcement, error) {
	if f.latest != nil && f.latest.IsActive {
		return f.latest, nil
	}
	return nil, nil
}

func (f *fakeAnnouncementRepo) History(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	if f.latest == nil {
		return nil, nil
	}
	return []*entity.Announcement{f.latest}, nil
}

func (f *fakeAnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func newAnnouncementService(fake *fakeAnnouncementRepo) AnnouncementService {
	repo := &repository.Repository{Announcement: fake}
	return NewAnnouncementService(repo, zap.NewNop())
}

func TestShouldAppendVersion(t *testing.T) {
	existing := &entity.Announcement{Message: "Closed on Monday"}

	if !shouldAppendVersion(nil, "Closed on Monday") {
		t.Fatal("empty log must append")
	}
	if !shouldAppendVersion(existing, "Open late Friday") {
		t.Fatal("changed message must append")
	}
	if shouldAppendVersion(existing, "Closed on Monday") {
		t.Fatal("identical message must not append")
	}
}

func TestSetAnnouncementAppendsNewVersion(t *testing.T) {
	fake := &fakeAnnouncementRepo{
		latest: &entity.Announcement{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Message:    "Closed on Monday",
			IsActive:   true,
		},
	}
	service := newAnnouncementService(fake)

	result, err := service.Set(context.Background(), &request.SetAnnouncementRequest{
		Message:  "Open late Friday",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if fake.created == nil {
		t.Fatal("expected a new version row")
	}
	if fake.toggled != nil {
		t.Fatal("append must not toggle the previous row")
	}
	if result.Message != "Open late Friday" {
		t.Fatalf("unexpected message: %s", result.Message)
	}
}

func TestSetAnnouncementTogglesInPlace(t *testing.T) {
	fake := &fakeAnnouncementRepo{
		latest: &entity.Announcement{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Message:    "Closed on Monday",
			IsActive:   true,
		},
	}
	service := newAnnouncementService(fake)

	result, err := service.Set(context.Background(), &request.SetAnnouncementRequest{
		Message:  "Closed on Monday",
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if fake.created != nil {
		t.Fatal("identical message must not create a new row")
	}
	if fake.toggled == nil || *fake.toggled {
		t.Fatalf("expected toggle to inactive, got %v", fake.toggled)
	}
	if result.IsActive {
		t.Fatal("response must reflect the new visibility")
	}
}

func TestCurrentAnnouncementEmptyLog(t *testing.T) {
	service := newAnnouncementService(&fakeAnnouncementRepo{})

	result, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if result.Message != "" || result.IsActive {
		t.Fatalf("expected empty placeholder, got %+v", result)
	}
}

func TestPublicAnnouncementHiddenWhenInactive(t *testing.T) {
	fake := &fakeAnnouncementRepo{
		latest: &entity.Announcement{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Message:    "Closed on Monday",
			IsActive:   false,
		},
	}
	service := newAnnouncementService(fake)

	result, err := service.Public(context.Background())
	if err != nil {
		t.Fatalf("Public returned error: %v", err)
	}
	if result != nil {
		t.Fatalf("inactive announcement must not be public, got %+v", result)
	}
}
