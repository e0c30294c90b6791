package usecase

import (
	"context"
	"errors"
	"testing"

	"wonder-rides/internal/data/repository"

	"go.uber.org/zap"
)

type fakeDashboardRepo struct {
	failCounts bool
}

func (f *fakeDashboardRepo) CountWaiversToday(ctx context.Context) (int64, error) {
	if f.failCounts {
		return 0, errors.New("query failed")
	}
	return 3, nil
}

func (f *fakeDashboardRepo) CountUnreadMessages(ctx context.Context) (int64, error) {
	return 5, nil
}

func (f *fakeDashboardRepo) CountActiveCards(ctx context.Context) (int64, error) {
	return 42, nil
}

func (f *fakeDashboardRepo) CountCardsIssuedToday(ctx context.Context) (int64, error) {
	return 2, nil
}

func (f *fakeDashboardRepo) WaiverDailySeries(ctx context.Context, days int) ([]repository.DailyCount, error) {
	return []repository.DailyCount{
		{Day: "2026-03-01", Count: 1},
		{Day: "2026-03-02", Count: 4},
	}, nil
}

func (f *fakeDashboardRepo) AuditDailySeries(ctx context.Context, days int) ([]repository.DailyActionCount, error) {
	return []repository.DailyActionCount{
		{Day: "2026-03-01", Action: "ISSUE", Count: 2},
		{Day: "2026-03-01", Action: "REDEEM", Count: 7},
		{Day: "2026-03-02", Action: "REDEEM", Count: 3},
	}, nil
}

func TestDashboardOverview(t *testing.T) {
	repo := &repository.Repository{Dashboard: &fakeDashboardRepo{}}
	service := NewDashboardService(repo, zap.NewNop())

	overview, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}

	if overview.WaiversToday != 3 || overview.UnreadMessages != 5 ||
		overview.ActiveCards != 42 || overview.CardsToday != 2 {
		t.Fatalf("unexpected counts: %+v", overview)
	}
	if len(overview.WaiverSeries) != 2 {
		t.Fatalf("expected 2 waiver buckets, got %d", len(overview.WaiverSeries))
	}
	if len(overview.ActivitySeries) != 2 {
		t.Fatalf("expected 2 activity days, got %d", len(overview.ActivitySeries))
	}

	first := overview.ActivitySeries[0]
	if first.Day != "2026-03-01" || first.Issues != 2 || first.Redeems != 7 {
		t.Fatalf("unexpected first activity bucket: %+v", first)
	}
	second := overview.ActivitySeries[1]
	if second.Day != "2026-03-02" || second.Issues != 0 || second.Redeems != 3 {
		t.Fatalf("unexpected second activity bucket: %+v", second)
	}
}

func TestDashboardOverviewPropagatesError(t *testing.T) {
	repo := &repository.Repository{Dashboard: &fakeDashboardRepo{failCounts: true}}
	service := NewDashboardService(repo, zap.NewNop())

	if _, err := service.Overview(context.Background()); err == nil {
		t.Fatal("expected error from failing query")
	}
}

func TestMergeActivitySeriesPreservesDayOrder(t *testing.T) {
	merged := mergeActivitySeries([]repository.DailyActionCount{
		{Day: "2026-03-01", Action: "REDEEM", Count: 1},
		{Day: "2026-03-02", Action: "ISSUE", Count: 2},
		{Day: "2026-03-02", Action: "REDEEM", Count: 5},
		{Day: "2026-03-03", Action: "ACTIVATE", Count: 9},
	})

	if len(merged) != 3 {
		t.Fatalf("expected 3 days, got %d", len(merged))
	}
	if merged[0].Day != "2026-03-01" || merged[1].Day != "2026-03-02" || merged[2].Day != "2026-03-03" {
		t.Fatalf("day order lost: %+v", merged)
	}
	if merged[1].Issues != 2 || merged[1].Redeems != 5 {
		t.Fatalf("unexpected merge: %+v", merged[1])
	}
	// ACTIVATE is not charted
	if merged[2].Issues != 0 || merged[2].Redeems != 0 {
		t.Fatalf("activation must not count as issue or redeem: %+v", merged[2])
	}
}
