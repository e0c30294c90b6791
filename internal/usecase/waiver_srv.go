package usecase

import (
	"context"
	"strings"
	"time"

	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/dto/response"

	"go.uber.org/zap"
)

type WaiverService interface {
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.WaiverResponse], error)
	Export(ctx context.Context) (filename string, csv []byte, err error)
}

type waiverService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewWaiverService(repo *repository.Repository, log *zap.Logger) WaiverService {
	return &waiverService{
		repo: repo,
		log:  log.With(zap.String("service", "waiver")),
		now:  time.Now,
	}
}

func (s *waiverService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.WaiverResponse], error) {
	waivers, err := s.repo.Waiver.Find(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Waiver.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.WaiversToResponse(waivers), page.Page, page.Limit(), total), nil
}

// Export renders every waiver as a CSV download. Signature data is
// deliberately excluded from the export.
func (s *waiverService) Export(ctx context.Context) (string, []byte, error) {
	waivers, err := s.repo.Waiver.FindAll(ctx)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("Name,Child Name,Date on Waiver,Location,Timestamp\n")
	for _, waiver := range waivers {
		childName := ""
		if waiver.ChildName != nil {
			childName = *waiver.ChildName
		}
		b.WriteString(csvEscape(waiver.Name))
		b.WriteByte(',')
		b.WriteString(csvEscape(childName))
		b.WriteByte(',')
		b.WriteString(waiver.Date.Format("2006-01-02"))
		b.WriteByte(',')
		b.WriteString(csvEscape(waiver.Location))
		b.WriteByte(',')
		b.WriteString(waiver.CreatedAt.Format(time.RFC3339))
		b.WriteByte('\n')
	}

	filename := "waivers_export_" + s.now().Format("2006-01-02") + ".csv"

	s.log.Info("Waivers exported", zap.Int("rows", len(waivers)))

	return filename, []byte(b.String()), nil
}

// csvEscape quotes a field when it contains a comma, quote or newline.
func csvEscape(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
