package entity

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical intervals", at(10), at(11), at(10), at(11), true},
		{"partial overlap", at(10), at(12), at(11), at(13), true},
		{"contained interval", at(10), at(14), at(11), at(12), true},
		{"back to back", at(10), at(11), at(11), at(12), false},
		{"back to back reversed", at(11), at(12), at(10), at(11), false},
		{"disjoint", at(8), at(9), at(10), at(11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Fatalf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}
