package usecase

import (
	"fmt"
	"math"
	"time"

	"wonder-rides/internal/data/entity"
)

// redeemOutcome reports what applyRedemption did to the card.
type redeemOutcome struct {
	// activated is true when the call was the first use of a
	// time-based pass: the start date was stamped and no balance
	// was spent.
	activated bool

	// dayOffset is set for time-based redemptions: the number of
	// whole days since activation.
	dayOffset *int
}

// applyRedemption mutates the card in memory according to the
// redemption rules and reports the outcome. The caller persists the
// mutation inside the same transaction that locked the row.
//
// Fixed-ride cards spend one punch. Time-based passes activate on
// first use, then spend one day per calendar day within the validity
// window; a day can never be spent twice.
func applyRedemption(card *entity.PunchCard, today time.Time) (*redeemOutcome, error) {
	if card.Status != entity.CardStatusActive || card.Balance <= 0 {
		return nil, fmt.Errorf("%w: card is not active or has no balance", ErrInvalidState)
	}

	today = truncateToDay(today)

	if card.IsTimeBased() {
		if card.ValidFrom == nil {
			validFrom := today
			card.ValidFrom = &validFrom
			return &redeemOutcome{activated: true}, nil
		}

		offset := daysBetween(truncateToDay(*card.ValidFrom), today)
		if offset < 0 || offset > card.PassDuration() {
			return nil, fmt.Errorf("%w: pass has expired", ErrInvalidState)
		}
		if card.HasUsedDay(offset) {
			return nil, fmt.Errorf("%w: already redeemed today", ErrInvalidState)
		}

		card.UsedDates = append(card.UsedDates, offset)
		spendPunch(card)
		return &redeemOutcome{dayOffset: &offset}, nil
	}

	spendPunch(card)
	return &redeemOutcome{}, nil
}

func spendPunch(card *entity.PunchCard) {
	card.Balance--
	if card.Balance == 0 {
		card.Status = entity.CardStatusCompleted
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days between two midnights.
// Rounding absorbs the odd-length days around DST transitions.
func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
