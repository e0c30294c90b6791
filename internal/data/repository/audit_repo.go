package repository

import (
	"context"
	"fmt"

	"wonder-rides/internal/data/entity"
	"wonder-rides/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// AuditEntryWithCode is an audit row joined with the code of the card
// it targets, for admin listings.
type AuditEntryWithCode struct {
	entity.AuditLog
	TargetCode *string
}

type AuditRepository interface {
	// CreateTx appends an entry inside the caller's transaction so the
	// audit insert commits or rolls back with the primary mutation.
	CreateTx(ctx context.Context, tx pgx.Tx, entry *entity.AuditLog) error

	List(ctx context.Context, limit, offset int) ([]*AuditEntryWithCode, error)
	Count(ctx context.Context) (int64, error)
	FindByTarget(ctx context.Context, targetID uuid.UUID) ([]*entity.AuditLog, error)
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) CreateTx(ctx context.Context, tx pgx.Tx, entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, action, performed_by, target_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.Exec(ctx, query,
		entry.ID,
		entry.Action,
		entry.PerformedBy,
		entry.TargetID,
		entry.Details,
		entry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to append audit entry",
			zap.Error(err),
			zap.String("action", string(entry.Action)),
			zap.String("target_id", entry.TargetID.String()),
		)
		return fmt.Errorf("append audit entry: %w", err)
	}

	return nil
}

func (r *auditRepository) List(ctx context.Context, limit, offset int) ([]*AuditEntryWithCode, error) {
	query := `
		SELECT a.id, a.action, a.performed_by, a.target_id, a.details, a.created_at,
		       p.code AS target_code
		FROM audit_logs a
		LEFT JOIN punch_cards p ON a.target_id = p.id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list audit entries",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*AuditEntryWithCode
	for rows.Next() {
		var entry AuditEntryWithCode
		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.PerformedBy,
			&entry.TargetID,
			&entry.Details,
			&entry.CreatedAt,
			&entry.TargetCode,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func (r *auditRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&count); err != nil {
		r.log.Error("Failed to count audit entries", zap.Error(err))
		return 0, fmt.Errorf("count audit entries: %w", err)
	}
	return count, nil
}

// FindByTarget returns the full history of one card, newest first.
func (r *auditRepository) FindByTarget(ctx context.Context, targetID uuid.UUID) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, action, performed_by, target_id, details, created_at
		FROM audit_logs
		WHERE target_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, targetID)
	if err != nil {
		r.log.Error("Failed to list card history",
			zap.Error(err),
			zap.String("target_id", targetID.String()),
		)
		return nil, fmt.Errorf("list card history %s: %w", targetID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.AuditLog
	for rows.Next() {
		var entry entity.AuditLog
		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.PerformedBy,
			&entry.TargetID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
