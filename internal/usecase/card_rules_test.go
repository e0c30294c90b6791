package usecase

import (
	"errors"
	"testing"
	"time"

	"wonder-rides/internal/data/entity"
)

func fixedCard(balance int) *entity.PunchCard {
	return &entity.PunchCard{
		Code:           "8823",
		Balance:        balance,
		InitialPunches: 6,
		CardType:       "5_plus_1",
		Status:         entity.CardStatusActive,
	}
}

func weeklyCard(validFrom *time.Time, used []int) *entity.PunchCard {
	return &entity.PunchCard{
		Code:           "W-100",
		Balance:        7,
		InitialPunches: 7,
		CardType:       "weekly_pass",
		Status:         entity.CardStatusActive,
		ValidFrom:      validFrom,
		UsedDates:      used,
	}
}

func day(offset int) time.Time {
	base := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestApplyRedemptionFixedCountdown(t *testing.T) {
	card := fixedCard(6)

	for want := 5; want >= 1; want-- {
		outcome, err := applyRedemption(card, day(0))
		if err != nil {
			t.Fatalf("redemption %d returned error: %v", 6-want, err)
		}
		if outcome.activated || outcome.dayOffset != nil {
			t.Fatalf("fixed card produced pass outcome: %+v", outcome)
		}
		if card.Balance != want {
			t.Fatalf("expected balance %d, got %d", want, card.Balance)
		}
		if card.Status != entity.CardStatusActive {
			t.Fatalf("card completed early at balance %d", card.Balance)
		}
	}

	if _, err := applyRedemption(card, day(0)); err != nil {
		t.Fatalf("final redemption returned error: %v", err)
	}
	if card.Balance != 0 {
		t.Fatalf("expected balance 0, got %d", card.Balance)
	}
	if card.Status != entity.CardStatusCompleted {
		t.Fatalf("expected completed status, got %s", card.Status)
	}
}

func TestApplyRedemptionExhaustedCard(t *testing.T) {
	card := fixedCard(0)
	card.Status = entity.CardStatusCompleted

	_, err := applyRedemption(card, day(0))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestApplyRedemptionVoidCard(t *testing.T) {
	card := fixedCard(3)
	card.Status = entity.CardStatusVoid

	_, err := applyRedemption(card, day(0))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestApplyRedemptionActivatesUnstartedPass(t *testing.T) {
	card := weeklyCard(nil, []int{})

	outcome, err := applyRedemption(card, day(2))
	if err != nil {
		t.Fatalf("activation returned error: %v", err)
	}
	if !outcome.activated {
		t.Fatal("expected activation outcome")
	}
	if card.Balance != 7 {
		t.Fatalf("activation must not spend balance, got %d", card.Balance)
	}
	if card.ValidFrom == nil || !card.ValidFrom.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected valid_from: %v", card.ValidFrom)
	}
}

func TestApplyRedemptionSpendsDayOnce(t *testing.T) {
	validFrom := day(0)
	card := weeklyCard(&validFrom, []int{})

	outcome, err := applyRedemption(card, day(3))
	if err != nil {
		t.Fatalf("redemption returned error: %v", err)
	}
	if outcome.dayOffset == nil || *outcome.dayOffset != 3 {
		t.Fatalf("expected day offset 3, got %v", outcome.dayOffset)
	}
	if card.Balance != 6 {
		t.Fatalf("expected balance 6, got %d", card.Balance)
	}

	_, err = applyRedemption(card, day(3))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected same-day rejection, got %v", err)
	}
	if card.Balance != 6 {
		t.Fatalf("rejected redemption changed balance to %d", card.Balance)
	}
}

func TestApplyRedemptionPassWindow(t *testing.T) {
	tests := []struct {
		name     string
		cardType string
		offset   int
		wantErr  bool
	}{
		{"weekly first day", "weekly_pass", 0, false},
		{"weekly last day", "weekly_pass", 6, false},
		{"weekly expired", "weekly_pass", 7, true},
		{"monthly last day", "monthly_pass", 29, false},
		{"monthly expired", "monthly_pass", 30, true},
		{"before start", "weekly_pass", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validFrom := day(0)
			card := weeklyCard(&validFrom, []int{})
			card.CardType = tt.cardType
			card.Balance = 30
			card.InitialPunches = 30

			_, err := applyRedemption(card, day(tt.offset))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Fatalf("expected ErrInvalidState, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDaysBetweenWholeDays(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	if got := daysBetween(from, to); got != 7 {
		t.Fatalf("expected 7 days, got %d", got)
	}
	if got := daysBetween(to, from); got != -7 {
		t.Fatalf("expected -7 days, got %d", got)
	}
}
