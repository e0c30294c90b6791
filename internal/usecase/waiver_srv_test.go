package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeWaiverRepo struct {
	waivers []*entity.Waiver
}

func (f *fakeWaiverRepo) Create(ctx context.Context, waiver *entity.Waiver) error {
	f.waivers = append(f.waivers, waiver)
	return nil
}

func (f *fakeWaiverRepo) Find(ctx context.Context, search string, limit, offset int) ([]*entity.Waiver, error) {
	return f.waivers, nil
}

func (f *fakeWaiverRepo) Count(ctx context.Context, search string) (int64, error) {
	return int64(len(f.waivers)), nil
}

func (f *fakeWaiverRepo) FindAll(ctx context.Context) ([]*entity.Waiver, error) {
	return f.waivers, nil
}

func TestCSVEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "Jane Doe"},
		{"Doe, Jane", `"Doe, Jane"`},
		{`the "fast" one`, `"the ""fast"" one"`},
		{"line\nbreak", "\"line\nbreak\""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := csvEscape(tt.in); got != tt.want {
			t.Fatalf("csvEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportWaiversCSV(t *testing.T) {
	childName := "Sam"
	fake := &fakeWaiverRepo{
		waivers: []*entity.Waiver{
			{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC),
				},
				Name:      "Doe, Jane",
				ChildName: &childName,
				Date:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Location:  "Main Park",
			},
			{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
				},
				Name:     "Bob Smith",
				Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				Location: "Mall Branch",
			},
		},
	}

	service := &waiverService{
		repo: &repository.Repository{Waiver: fake},
		log:  zap.NewNop(),
		now:  func() time.Time { return time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC) },
	}

	filename, csv, err := service.Export(context.Background())
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if filename != "waivers_export_2026-03-05.csv" {
		t.Fatalf("unexpected filename: %s", filename)
	}

	lines := strings.Split(strings.TrimRight(string(csv), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Name,Child Name,Date on Waiver,Location,Timestamp" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != `"Doe, Jane",Sam,2026-03-01,Main Park,2026-03-01T09:15:00Z` {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
	if lines[2] != "Bob Smith,,2026-03-02,Mall Branch,2026-03-02T14:00:00Z" {
		t.Fatalf("unexpected second row: %s", lines[2])
	}
	if strings.Contains(string(csv), "signature") {
		t.Fatal("signature data must not be exported")
	}
}
