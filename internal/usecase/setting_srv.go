package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"

	"go.uber.org/zap"
)

type SettingService interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, req *request.UpsertSettingRequest) error
}

type settingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSettingService(repo *repository.Repository, log *zap.Logger) SettingService {
	return &settingService{
		repo: repo,
		log:  log.With(zap.String("service", "setting")),
	}
}

// Get returns the raw JSON value for a key, or nil when the key has
// never been written.
func (s *settingService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrValidation)
	}

	setting, err := s.repo.Setting.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}

	return setting.Value, nil
}

func (s *settingService) Set(ctx context.Context, req *request.UpsertSettingRequest) error {
	if !json.Valid(req.Value) {
		return fmt.Errorf("%w: value must be valid JSON", ErrValidation)
	}

	if err := s.repo.Setting.Upsert(ctx, req.Key, req.Value); err != nil {
		return err
	}

	s.log.Info("Setting updated", zap.String("key", req.Key))

	return nil
}
