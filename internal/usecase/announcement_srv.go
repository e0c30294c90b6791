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

const announcementHistoryLimit = 10

type AnnouncementService interface {
	Set(ctx context.Context, req *request.SetAnnouncementRequest) (*response.AnnouncementResponse, error)
	Current(ctx context.Context) (*response.AnnouncementResponse, error)
	History(ctx context.Context) ([]response.AnnouncementResponse, error)
	Public(ctx context.Context) (*response.PublicAnnouncementResponse, error)
	Delete(ctx context.Context, req *request.DeleteAnnouncementRequest) error
}

type announcementService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewAnnouncementService(repo *repository.Repository, log *zap.Logger) AnnouncementService {
	return &announcementService{
		repo: repo,
		log:  log.With(zap.String("service", "announcement")),
		now:  time.Now,
	}
}

// Set appends a new version when the message text changed, and only
// flips is_active on the latest row when the text is identical. This
// keeps the history one row per distinct message instead of one row
// per visibility toggle.
func (s *announcementService) Set(ctx context.Context, req *request.SetAnnouncementRequest) (*response.AnnouncementResponse, error) {
	latest, err := s.repo.Announcement.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	if !shouldAppendVersion(latest, req.Message) {
		if latest.IsActive != req.IsActive {
			if err := s.repo.Announcement.UpdateActive(ctx, latest.ID, req.IsActive); err != nil {
				return nil, err
			}
			latest.IsActive = req.IsActive
		}

		result := response.AnnouncementToResponse(latest)
		return &result, nil
	}

	announcement := &entity.Announcement{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Message:  req.Message,
		IsActive: req.IsActive,
	}

	if err := s.repo.Announcement.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.log.Info("Announcement version appended",
		zap.String("announcement_id", announcement.ID.String()),
		zap.Bool("is_active", announcement.IsActive),
	)

	result := response.AnnouncementToResponse(announcement)
	return &result, nil
}

// Current returns the latest version regardless of visibility, with an
// empty inactive placeholder when no announcement has ever been set.
func (s *announcementService) Current(ctx context.Context) (*response.AnnouncementResponse, error) {
	latest, err := s.repo.Announcement.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &response.AnnouncementResponse{Message: "", IsActive: false}, nil
	}

	result := response.AnnouncementToResponse(latest)
	return &result, nil
}

func (s *announcementService) History(ctx context.Context) ([]response.AnnouncementResponse, error) {
	announcements, err := s.repo.Announcement.History(ctx, announcementHistoryLimit)
	if err != nil {
		return nil, err
	}
	return response.AnnouncementsToResponse(announcements), nil
}

// Public returns the latest active announcement for the site banner,
// or nil when nothing is live.
func (s *announcementService) Public(ctx context.Context) (*response.PublicAnnouncementResponse, error) {
	latest, err := s.repo.Announcement.FindLatestActive(ctx)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}

	return &response.PublicAnnouncementResponse{
		Message:  latest.Message,
		IsActive: latest.IsActive,
	}, nil
}

func (s *announcementService) Delete(ctx context.Context, req *request.DeleteAnnouncementRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid announcement id", ErrValidation)
	}

	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Announcement version deleted", zap.String("announcement_id", req.ID))

	return nil
}

// shouldAppendVersion reports whether a Set call must create a new row.
// A nil latest (empty log) or a changed message appends; an identical
// message only toggles the existing row.
func shouldAppendVersion(latest *entity.Announcement, message string) bool {
	return latest == nil || latest.Message != message
}
