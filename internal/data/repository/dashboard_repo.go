package repository

import (
	"context"
	"fmt"

	"wonder-rides/pkg/database"

	"go.uber.org/zap"
)

// DailyCount is one bucket of a per-day aggregate series.
type DailyCount struct {
	Day   string
	Count int64
}

// DailyActionCount buckets audit activity per day and action.
type DailyActionCount struct {
	Day    string
	Action string
	Count  int64
}

// DashboardRepository serves the aggregate queries behind the admin
// overview page.
type DashboardRepository interface {
	CountWaiversToday(ctx context.Context) (int64, error)
	CountUnreadMessages(ctx context.Context) (int64, error)
	CountActiveCards(ctx context.Context) (int64, error)
	CountCardsIssuedToday(ctx context.Context) (int64, error)
	WaiverDailySeries(ctx context.Context, days int) ([]DailyCount, error)
	AuditDailySeries(ctx context.Context, days int) ([]DailyActionCount, error)
}

type dashboardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDashboardRepository(db database.PgxIface, log *zap.Logger) DashboardRepository {
	return &dashboardRepository{
		db:  db,
		log: log.With(zap.String("repository", "dashboard")),
	}
}

func (r *dashboardRepository) countOne(ctx context.Context, name, query string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to run dashboard count", zap.Error(err), zap.String("metric", name))
		return 0, fmt.Errorf("dashboard %s: %w", name, err)
	}
	return count, nil
}

func (r *dashboardRepository) CountWaiversToday(ctx context.Context) (int64, error) {
	return r.countOne(ctx, "waivers_today",
		`SELECT COUNT(*) FROM waivers WHERE created_at >= CURRENT_DATE`)
}

func (r *dashboardRepository) CountUnreadMessages(ctx context.Context) (int64, error) {
	return r.countOne(ctx, "unread_messages",
		`SELECT COUNT(*) FROM messages WHERE status = 'unread'`)
}

func (r *dashboardRepository) CountActiveCards(ctx context.Context) (int64, error) {
	return r.countOne(ctx, "active_cards",
		`SELECT COUNT(*) FROM punch_cards WHERE status = 'active'`)
}

func (r *dashboardRepository) CountCardsIssuedToday(ctx context.Context) (int64, error) {
	return r.countOne(ctx, "cards_today",
		`SELECT COUNT(*) FROM punch_cards WHERE created_at >= CURRENT_DATE`)
}

func (r *dashboardRepository) WaiverDailySeries(ctx context.Context, days int) ([]DailyCount, error) {
	query := `
		SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS count
		FROM waivers
		WHERE created_at >= CURRENT_DATE - $1 * INTERVAL '1 day'
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		r.log.Error("Failed to build waiver series", zap.Error(err))
		return nil, fmt.Errorf("waiver daily series: %w", err)
	}
	defer rows.Close()

	var series []DailyCount
	for rows.Next() {
		var bucket DailyCount
		if err := rows.Scan(&bucket.Day, &bucket.Count); err != nil {
			return nil, fmt.Errorf("scan waiver series row: %w", err)
		}
		series = append(series, bucket)
	}

	return series, rows.Err()
}

func (r *dashboardRepository) AuditDailySeries(ctx context.Context, days int) ([]DailyActionCount, error) {
	query := `
		SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS day, action, COUNT(*) AS count
		FROM audit_logs
		WHERE created_at >= CURRENT_DATE - $1 * INTERVAL '1 day'
		GROUP BY day, action
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		r.log.Error("Failed to build audit series", zap.Error(err))
		return nil, fmt.Errorf("audit daily series: %w", err)
	}
	defer rows.Close()

	var series []DailyActionCount
	for rows.Next() {
		var bucket DailyActionCount
		if err := rows.Scan(&bucket.Day, &bucket.Action, &bucket.Count); err != nil {
			return nil, fmt.Errorf("scan audit series row: %w", err)
		}
		series = append(series, bucket)
	}

	return series, rows.Err()
}
