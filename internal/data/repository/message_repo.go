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

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	Find(ctx context.Context, search string, limit, offset int) ([]*entity.Message, error)
	Count(ctx context.Context, search string) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus) error
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

const messageColumns = `id, first_name, last_name, email, phone, child_age,
		preferred_contact, subject, message, status, created_at`

func scanMessage(row pgx.Row) (*entity.Message, error) {
	var message entity.Message
	err := row.Scan(
		&message.ID,
		&message.FirstName,
		&message.LastName,
		&message.Email,
		&message.Phone,
		&message.ChildAge,
		&message.PreferredContact,
		&message.Subject,
		&message.Body,
		&message.Status,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (
			id, first_name, last_name, email, phone, child_age,
			preferred_contact, subject, message, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.FirstName,
		message.LastName,
		message.Email,
		message.Phone,
		message.ChildAge,
		message.PreferredContact,
		message.Subject,
		message.Body,
		message.Status,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("email", message.Email),
		)
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// Find returns a page of messages, newest first, optionally filtered by
// a case-insensitive name/email search.
func (r *messageRepository) Find(ctx context.Context, search string, limit, offset int) ([]*entity.Message, error) {
	var rows pgx.Rows
	var err error

	if search != "" {
		query := `
			SELECT ` + messageColumns + `
			FROM messages
			WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		rows, err = r.db.Query(ctx, query, "%"+search+"%", limit, offset)
	} else {
		query := `
			SELECT ` + messageColumns + `
			FROM messages
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`
		rows, err = r.db.Query(ctx, query, limit, offset)
	}

	if err != nil {
		r.log.Error("Failed to list messages",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

func (r *messageRepository) Count(ctx context.Context, search string) (int64, error) {
	var count int64
	var err error

	if search != "" {
		query := `
			SELECT COUNT(*) FROM messages
			WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
		`
		err = r.db.QueryRow(ctx, query, "%"+search+"%").Scan(&count)
	} else {
		err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&count)
	}

	if err != nil {
		r.log.Error("Failed to count messages", zap.Error(err), zap.String("search", search))
		return 0, fmt.Errorf("count messages: %w", err)
	}

	return count, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus) error {
	query := `UPDATE messages SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update message status",
			zap.Error(err),
			zap.String("message_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update message %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
