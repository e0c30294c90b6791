package usecase

import (
	"context"
	"fmt"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageService interface {
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.MessageResponse], error)
	UpdateStatus(ctx context.Context, req *request.UpdateMessageStatusRequest) error
}

type messageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMessageService(repo *repository.Repository, log *zap.Logger) MessageService {
	return &messageService{
		repo: repo,
		log:  log.With(zap.String("service", "message")),
	}
}

func (s *messageService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.MessageResponse], error) {
	messages, err := s.repo.Message.Find(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Message.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.MessagesToResponse(messages), page.Page, page.Limit(), total), nil
}

func (s *messageService) UpdateStatus(ctx context.Context, req *request.UpdateMessageStatusRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid message id", ErrValidation)
	}

	if err := s.repo.Message.UpdateStatus(ctx, id, entity.MessageStatus(req.Status)); err != nil {
		return err
	}

	s.log.Info("Message status updated",
		zap.String("message_id", req.ID),
		zap.String("status", req.Status),
	)

	return nil
}
