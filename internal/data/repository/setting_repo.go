package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"wonder-rides/internal/data/entity"
	"wonder-rides/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*entity.Setting, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}

type settingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingRepository(db database.PgxIface, log *zap.Logger) SettingRepository {
	return &settingRepository{
		db:  db,
		log: log.With(zap.String("repository", "setting")),
	}
}

func (r *settingRepository) FindByKey(ctx context.Context, key string) (*entity.Setting, error) {
	query := `SELECT key, value, updated_at FROM settings WHERE key = $1`

	var setting entity.Setting
	err := r.db.QueryRow(ctx, query, key).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find setting", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("find setting %s: %w", key, err)
	}

	return &setting, nil
}

func (r *settingRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		r.log.Error("Failed to upsert setting", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}

	return nil
}
