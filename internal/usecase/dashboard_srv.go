package usecase

import (
	"context"
	"sync"

	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/response"

	"go.uber.org/zap"
)

const dashboardSeriesDays = 7

type DashboardService interface {
	Overview(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

// Overview fans the independent aggregate queries out concurrently and
// returns the first error encountered.
func (s *dashboardService) Overview(ctx context.Context) (*response.DashboardResponse, error) {
	var (
		result response.DashboardResponse

		waiverSeries []repository.DailyCount
		auditSeries  []repository.DailyActionCount

		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				fail(err)
			}
		}()
	}

	run(func() (err error) {
		result.WaiversToday, err = s.repo.Dashboard.CountWaiversToday(ctx)
		return
	})
	run(func() (err error) {
		result.UnreadMessages, err = s.repo.Dashboard.CountUnreadMessages(ctx)
		return
	})
	run(func() (err error) {
		result.ActiveCards, err = s.repo.Dashboard.CountActiveCards(ctx)
		return
	})
	run(func() (err error) {
		result.CardsToday, err = s.repo.Dashboard.CountCardsIssuedToday(ctx)
		return
	})
	run(func() (err error) {
		waiverSeries, err = s.repo.Dashboard.WaiverDailySeries(ctx, dashboardSeriesDays)
		return
	})
	run(func() (err error) {
		auditSeries, err = s.repo.Dashboard.AuditDailySeries(ctx, dashboardSeriesDays)
		return
	})

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	result.WaiverSeries = make([]response.DailyCount, len(waiverSeries))
	for i, bucket := range waiverSeries {
		result.WaiverSeries[i] = response.DailyCount{Day: bucket.Day, Count: bucket.Count}
	}
	result.ActivitySeries = mergeActivitySeries(auditSeries)

	return &result, nil
}

// mergeActivitySeries folds per-action daily buckets into one row per
// day with issue and redeem columns, preserving day order of first
// appearance (the query already sorts by day).
func mergeActivitySeries(buckets []repository.DailyActionCount) []response.DailyActivity {
	series := make([]response.DailyActivity, 0, len(buckets))
	index := make(map[string]int, len(buckets))

	for _, bucket := range buckets {
		i, ok := index[bucket.Day]
		if !ok {
			i = len(series)
			index[bucket.Day] = i
			series = append(series, response.DailyActivity{Day: bucket.Day})
		}

		switch bucket.Action {
		case "ISSUE":
			series[i].Issues += bucket.Count
		case "REDEEM":
			series[i].Redeems += bucket.Count
		}
	}

	return series
}
