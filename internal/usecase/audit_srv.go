package usecase

import (
	"context"

	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/dto/response"

	"go.uber.org/zap"
)

type AuditService interface {
	List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.AuditEntryResponse], error)
}

type auditService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuditService(repo *repository.Repository, log *zap.Logger) AuditService {
	return &auditService{
		repo: repo,
		log:  log.With(zap.String("service", "audit")),
	}
}

func (s *auditService) List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.AuditEntryResponse], error) {
	entries, err := s.repo.Audit.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Audit.Count(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.AuditEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = response.AuditEntryToResponse(entry)
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}
