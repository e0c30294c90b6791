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
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CardService interface {
	Issue(ctx context.Context, operator string, req *request.IssueCardRequest) (*response.CardResponse, error)
	Redeem(ctx context.Context, operator string, cardID string) (*response.RedeemResult, error)
	Search(ctx context.Context, query string) ([]response.CardResponse, error)
	History(ctx context.Context, targetID string) ([]response.AuditEntryResponse, error)
}

type cardService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCardService(repo *repository.Repository, log *zap.Logger) CardService {
	return &cardService{
		repo: repo,
		log:  log.With(zap.String("service", "card")),
		now:  time.Now,
	}
}

// Issue creates a punch card and its ISSUE audit entry in one
// transaction. Duplicate codes are rejected with a conflict.
func (s *cardService) Issue(ctx context.Context, operator string, req *request.IssueCardRequest) (*response.CardResponse, error) {
	timeBased := entity.IsTimeBasedType(req.CardType)

	var validFrom *time.Time
	if timeBased && req.ValidFrom != "" {
		parsed, err := time.Parse("2006-01-02", req.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid valid_from date", ErrValidation)
		}
		validFrom = &parsed
	}

	now := s.now()
	card := &entity.PunchCard{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:            req.Code,
		Balance:         req.InitialPunches,
		InitialPunches:  req.InitialPunches,
		CardType:        req.CardType,
		Status:          entity.CardStatusActive,
		CustomerName:    optional(req.CustomerName),
		CustomerPhone:   optional(req.CustomerPhone),
		CustomerEmail:   optional(req.CustomerEmail),
		ChildName:       optional(req.ChildName),
		ChildBirthMonth: optional(req.ChildBirthMonth),
		Notes:           optional(req.Notes),
		ValidFrom:       validFrom,
	}
	if timeBased {
		card.UsedDates = []int{}
	}

	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin issue transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	exists, err := s.repo.Card.ExistsByCodeTx(ctx, tx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: card code already exists", ErrConflict)
	}

	if err := s.repo.Card.CreateTx(ctx, tx, card); err != nil {
		return nil, err
	}

	var details entity.AuditDetails
	if timeBased {
		details = entity.IssuePassDetails{Type: req.CardType, From: req.ValidFrom}
	} else {
		details = entity.IssueFixedDetails{Init: req.InitialPunches}
	}

	if err := s.recordAudit(ctx, tx, operator, card.ID, details); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit issue transaction: %w", err)
	}

	s.log.Info("Punch card issued",
		zap.String("card_id", card.ID.String()),
		zap.String("code", card.Code),
		zap.String("card_type", card.CardType),
		zap.Int("initial_punches", card.InitialPunches),
		zap.String("operator", operator),
	)

	resp := response.CardToResponse(card)
	return &resp, nil
}

// Redeem spends one balance unit, or activates a dormant time-based
// pass. The row lock, the mutation and the audit insert share one
// transaction: either everything commits or nothing does.
func (s *cardService) Redeem(ctx context.Context, operator string, cardID string) (*response.RedeemResult, error) {
	id, err := uuid.Parse(cardID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid card ID", ErrValidation)
	}

	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin redeem transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	card, err := s.repo.Card.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}

	outcome, err := applyRedemption(card, s.now())
	if err != nil {
		return nil, err
	}

	if outcome.activated {
		if err := s.repo.Card.ActivateTx(ctx, tx, card.ID, *card.ValidFrom); err != nil {
			return nil, err
		}
		details := entity.ActivateDetails{From: card.ValidFrom.Format("2006-01-02")}
		if err := s.recordAudit(ctx, tx, operator, card.ID, details); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.Card.ApplyRedemptionTx(ctx, tx, card); err != nil {
			return nil, err
		}
		details := entity.RedeemDetails{Balance: card.Balance, Day: outcome.dayOffset}
		if err := s.recordAudit(ctx, tx, operator, card.ID, details); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit redeem transaction: %w", err)
	}

	s.log.Info("Card redeemed",
		zap.String("card_id", card.ID.String()),
		zap.String("code", card.Code),
		zap.Bool("activated", outcome.activated),
		zap.Int("balance", card.Balance),
		zap.String("operator", operator),
	)

	return &response.RedeemResult{
		Card:      response.CardToResponse(card),
		Activated: outcome.activated,
	}, nil
}

// Search matches code or customer phone exactly; with no query the
// most recently issued cards are returned.
func (s *cardService) Search(ctx context.Context, query string) ([]response.CardResponse, error) {
	var cards []*entity.PunchCard
	var err error

	if query != "" {
		cards, err = s.repo.Card.Search(ctx, query)
	} else {
		cards, err = s.repo.Card.FindRecent(ctx, 50)
	}
	if err != nil {
		return nil, err
	}

	return response.CardsToResponse(cards), nil
}

func (s *cardService) History(ctx context.Context, targetID string) ([]response.AuditEntryResponse, error) {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid target ID", ErrValidation)
	}

	entries, err := s.repo.Audit.FindByTarget(ctx, id)
	if err != nil {
		return nil, err
	}

	return response.AuditLogsToResponse(entries), nil
}

func (s *cardService) recordAudit(ctx context.Context, tx pgx.Tx, operator string, targetID uuid.UUID, details entity.AuditDetails) error {
	entry, err := entity.NewAuditLog(operator, targetID, details)
	if err != nil {
		return err
	}
	entry.ID = uuid.New()
	entry.CreatedAt = s.now()

	return s.repo.Audit.CreateTx(ctx, tx, entry)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
