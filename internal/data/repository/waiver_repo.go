package repository

import (
	"context"
	"fmt"

	"wonder-rides/internal/data/entity"
	"wonder-rides/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WaiverRepository interface {
	Create(ctx context.Context, waiver *entity.Waiver) error
	Find(ctx context.Context, search string, limit, offset int) ([]*entity.Waiver, error)
	Count(ctx context.Context, search string) (int64, error)
	FindAll(ctx context.Context) ([]*entity.Waiver, error)
}

type waiverRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWaiverRepository(db database.PgxIface, log *zap.Logger) WaiverRepository {
	return &waiverRepository{
		db:  db,
		log: log.With(zap.String("repository", "waiver")),
	}
}

const waiverColumns = `id, name, child_name, date, location, signature_data, created_at`

func scanWaiver(row pgx.Row) (*entity.Waiver, error) {
	var waiver entity.Waiver
	err := row.Scan(
		&waiver.ID,
		&waiver.Name,
		&waiver.ChildName,
		&waiver.Date,
		&waiver.Location,
		&waiver.SignatureData,
		&waiver.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &waiver, nil
}

// Waivers are append-only; there is deliberately no update or delete.
func (r *waiverRepository) Create(ctx context.Context, waiver *entity.Waiver) error {
	query := `
		INSERT INTO waivers (id, name, child_name, date, location, signature_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		waiver.ID,
		waiver.Name,
		waiver.ChildName,
		waiver.Date,
		waiver.Location,
		waiver.SignatureData,
		waiver.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create waiver",
			zap.Error(err),
			zap.String("name", waiver.Name),
		)
		return fmt.Errorf("create waiver: %w", err)
	}

	return nil
}

func (r *waiverRepository) Find(ctx context.Context, search string, limit, offset int) ([]*entity.Waiver, error) {
	var rows pgx.Rows
	var err error

	if search != "" {
		query := `
			SELECT ` + waiverColumns + `
			FROM waivers
			WHERE name ILIKE $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		rows, err = r.db.Query(ctx, query, "%"+search+"%", limit, offset)
	} else {
		query := `
			SELECT ` + waiverColumns + `
			FROM waivers
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`
		rows, err = r.db.Query(ctx, query, limit, offset)
	}

	if err != nil {
		r.log.Error("Failed to list waivers",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list waivers: %w", err)
	}
	defer rows.Close()

	return collectWaivers(rows)
}

func (r *waiverRepository) Count(ctx context.Context, search string) (int64, error) {
	var count int64
	var err error

	if search != "" {
		err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM waivers WHERE name ILIKE $1`, "%"+search+"%").Scan(&count)
	} else {
		err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM waivers`).Scan(&count)
	}

	if err != nil {
		r.log.Error("Failed to count waivers", zap.Error(err), zap.String("search", search))
		return 0, fmt.Errorf("count waivers: %w", err)
	}

	return count, nil
}

// FindAll returns every waiver for CSV export, newest first.
func (r *waiverRepository) FindAll(ctx context.Context) ([]*entity.Waiver, error) {
	query := `SELECT ` + waiverColumns + ` FROM waivers ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to export waivers", zap.Error(err))
		return nil, fmt.Errorf("export waivers: %w", err)
	}
	defer rows.Close()

	return collectWaivers(rows)
}

func collectWaivers(rows pgx.Rows) ([]*entity.Waiver, error) {
	var waivers []*entity.Waiver
	for rows.Next() {
		waiver, err := scanWaiver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan waiver row: %w", err)
		}
		waivers = append(waivers, waiver)
	}
	return waivers, rows.Err()
}
