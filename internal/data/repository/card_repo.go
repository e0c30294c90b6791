package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CardRepository interface {
	// Transactional operations; the caller owns commit/rollback.
	CreateTx(ctx context.Context, tx pgx.Tx, card *entity.PunchCard) error
	ExistsByCodeTx(ctx context.Context, tx pgx.Tx, code string) (bool, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.PunchCard, error)
	ApplyRedemptionTx(ctx context.Context, tx pgx.Tx, card *entity.PunchCard) error
	ActivateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, validFrom time.Time) error

	// Lookup queries
	Search(ctx context.Context, query string) ([]*entity.PunchCard, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.PunchCard, error)
	FindLatestByPhone(ctx context.Context, phone string) (*entity.PunchCard, error)
}

type cardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCardRepository(db database.PgxIface, log *zap.Logger) CardRepository {
	return &cardRepository{
		db:  db,
		log: log.With(zap.String("repository", "card")),
	}
}

const cardColumns = `id, code, balance, initial_punches, card_type, status,
		customer_name, customer_phone, customer_email, child_name, child_birth_month,
		notes, valid_from, used_dates, last_used_at, created_at, updated_at`

func scanCard(row pgx.Row) (*entity.PunchCard, error) {
	var card entity.PunchCard
	var usedDates []byte

	err := row.Scan(
		&card.ID,
		&card.Code,
		&card.Balance,
		&card.InitialPunches,
		&card.CardType,
		&card.Status,
		&card.CustomerName,
		&card.CustomerPhone,
		&card.CustomerEmail,
		&card.ChildName,
		&card.ChildBirthMonth,
		&card.Notes,
		&card.ValidFrom,
		&usedDates,
		&card.LastUsedAt,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(usedDates) > 0 {
		if err := json.Unmarshal(usedDates, &card.UsedDates); err != nil {
			return nil, fmt.Errorf("unmarshal used_dates: %w", err)
		}
	}

	return &card, nil
}

func (r *cardRepository) CreateTx(ctx context.Context, tx pgx.Tx, card *entity.PunchCard) error {
	query := `
		INSERT INTO punch_cards (
			id, code, balance, initial_punches, card_type, status,
			customer_name, customer_phone, customer_email, child_name, child_birth_month,
			notes, valid_from, used_dates, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	var usedDates any
	if card.IsTimeBased() {
		raw, err := json.Marshal(card.UsedDates)
		if err != nil {
			return fmt.Errorf("marshal used_dates: %w", err)
		}
		usedDates = raw
	}

	_, err := tx.Exec(ctx, query,
		card.ID,
		card.Code,
		card.Balance,
		card.InitialPunches,
		card.CardType,
		card.Status,
		card.CustomerName,
		card.CustomerPhone,
		card.CustomerEmail,
		card.ChildName,
		card.ChildBirthMonth,
		card.Notes,
		card.ValidFrom,
		usedDates,
		card.CreatedAt,
		card.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create punch card",
			zap.Error(err),
			zap.String("code", card.Code),
			zap.String("card_type", card.CardType),
		)
		return fmt.Errorf("create punch card %s: %w", card.Code, err)
	}

	return nil
}

func (r *cardRepository) ExistsByCodeTx(ctx context.Context, tx pgx.Tx, code string) (bool, error) {
	query := `SELECT id FROM punch_cards WHERE code = $1 LIMIT 1`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, code).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check card code", zap.Error(err), zap.String("code", code))
		return false, fmt.Errorf("check card code %s: %w", code, err)
	}

	return true, nil
}

// FindByIDForUpdate locks the card row for the rest of the transaction
// so concurrent redemption attempts on the same card serialize.
func (r *cardRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.PunchCard, error) {
	query := `SELECT ` + cardColumns + ` FROM punch_cards WHERE id = $1 FOR UPDATE`

	card, err := scanCard(tx.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock card for update",
			zap.Error(err),
			zap.String("card_id", id.String()),
		)
		return nil, fmt.Errorf("lock card %s: %w", id.String(), err)
	}

	return card, nil
}

// ApplyRedemptionTx writes the mutated balance, status, used dates and
// usage timestamps back to the locked row.
func (r *cardRepository) ApplyRedemptionTx(ctx context.Context, tx pgx.Tx, card *entity.PunchCard) error {
	query := `
		UPDATE punch_cards
		SET balance = $2, status = $3, used_dates = $4, last_used_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	var usedDates any
	if card.IsTimeBased() {
		raw, err := json.Marshal(card.UsedDates)
		if err != nil {
			return fmt.Errorf("marshal used_dates: %w", err)
		}
		usedDates = raw
	}

	result, err := tx.Exec(ctx, query, card.ID, card.Balance, card.Status, usedDates)
	if err != nil {
		r.log.Error("Failed to apply redemption",
			zap.Error(err),
			zap.String("card_id", card.ID.String()),
		)
		return fmt.Errorf("apply redemption to card %s: %w", card.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", card.ID.String(), ErrNotFound)
	}

	return nil
}

// ActivateTx stamps the activation date of a time-based pass. Balance
// is untouched; activation is not a redemption.
func (r *cardRepository) ActivateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, validFrom time.Time) error {
	query := `
		UPDATE punch_cards
		SET valid_from = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id, validFrom)
	if err != nil {
		r.log.Error("Failed to activate pass",
			zap.Error(err),
			zap.String("card_id", id.String()),
		)
		return fmt.Errorf("activate card %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

// Search matches a card code or customer phone exactly.
func (r *cardRepository) Search(ctx context.Context, query string) ([]*entity.PunchCard, error) {
	sql := `
		SELECT ` + cardColumns + `
		FROM punch_cards
		WHERE code = $1 OR customer_phone = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		r.log.Error("Failed to search cards", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("search cards %q: %w", query, err)
	}
	defer rows.Close()

	return collectCards(rows)
}

func (r *cardRepository) FindRecent(ctx context.Context, limit int) ([]*entity.PunchCard, error) {
	sql := `SELECT ` + cardColumns + ` FROM punch_cards ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		r.log.Error("Failed to list recent cards", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("list recent cards: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

func (r *cardRepository) FindLatestByPhone(ctx context.Context, phone string) (*entity.PunchCard, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM punch_cards
		WHERE customer_phone = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	card, err := scanCard(r.db.QueryRow(ctx, query, phone))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find card by phone", zap.Error(err))
		return nil, fmt.Errorf("find card by phone: %w", err)
	}

	return card, nil
}

func collectCards(rows pgx.Rows) ([]*entity.PunchCard, error) {
	var cards []*entity.PunchCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card row: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
