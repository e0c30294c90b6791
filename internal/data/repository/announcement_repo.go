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

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) error
	FindLatest(ctx context.Context) (*entity.Announcement, error)
	FindLatestActive(ctx context.Context) (*entity.Announcement, error)
	History(ctx context.Context, limit int) ([]*entity.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAnnouncementRepository(db database.PgxIface, log *zap.Logger) AnnouncementRepository {
	return &announcementRepository{
		db:  db,
		log: log.With(zap.String("repository", "announcement")),
	}
}

const announcementColumns = `id, message, is_active, created_at`

func scanAnnouncement(row pgx.Row) (*entity.Announcement, error) {
	var announcement entity.Announcement
	err := row.Scan(
		&announcement.ID,
		&announcement.Message,
		&announcement.IsActive,
		&announcement.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	query := `
		INSERT INTO announcements (id, message, is_active, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		announcement.ID,
		announcement.Message,
		announcement.IsActive,
		announcement.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create announcement", zap.Error(err))
		return fmt.Errorf("create announcement: %w", err)
	}

	return nil
}

// UpdateActive toggles visibility of an existing version without
// growing history.
func (r *announcementRepository) UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE announcements SET is_active = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, isActive)
	if err != nil {
		r.log.Error("Failed to update announcement visibility",
			zap.Error(err),
			zap.String("announcement_id", id.String()),
		)
		return fmt.Errorf("update announcement %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("announcement %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *announcementRepository) FindLatest(ctx context.Context) (*entity.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements ORDER BY created_at DESC LIMIT 1`

	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, query))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest announcement", zap.Error(err))
		return nil, fmt.Errorf("find latest announcement: %w", err)
	}

	return announcement, nil
}

func (r *announcementRepository) FindLatestActive(ctx context.Context) (*entity.Announcement, error) {
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements
		WHERE is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`

	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, query))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active announcement", zap.Error(err))
		return nil, fmt.Errorf("find active announcement: %w", err)
	}

	return announcement, nil
}

func (r *announcementRepository) History(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to list announcement history", zap.Error(err))
		return nil, fmt.Errorf("list announcement history: %w", err)
	}
	defer rows.Close()

	var announcements []*entity.Announcement
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement row: %w", err)
		}
		announcements = append(announcements, announcement)
	}

	return announcements, rows.Err()
}

// Delete hard-deletes one history version.
func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM announcements WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete announcement",
			zap.Error(err),
			zap.String("announcement_id", id.String()),
		)
		return fmt.Errorf("delete announcement %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("announcement %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Announcement history entry deleted", zap.String("announcement_id", id.String()))
	return nil
}
