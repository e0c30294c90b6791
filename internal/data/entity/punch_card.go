package entity

import (
	"strings"
	"time"
)

type CardStatus string

const (
	CardStatusActive    CardStatus = "active"
	CardStatusCompleted CardStatus = "completed"
	CardStatusVoid      CardStatus = "void"
)

// Day-offset upper bounds for time-based passes. Offsets are zero-based,
// so a weekly pass covers offsets 0..6 and a monthly pass 0..29.
const (
	WeeklyPassDuration  = 6
	MonthlyPassDuration = 29
)

// PunchCard is a prepaid allotment of rides (fixed packages such as
// "5_plus_1") or calendar days (card types prefixed "weekly"/"monthly").
// For time-based passes Balance counts remaining days, ValidFrom is the
// activation date and UsedDates holds the day offsets already redeemed.
type PunchCard struct {
	Base
	Code            string     `db:"code"`
	Balance         int        `db:"balance"`
	InitialPunches  int        `db:"initial_punches"`
	CardType        string     `db:"card_type"`
	Status          CardStatus `db:"status"`
	CustomerName    *string    `db:"customer_name"`
	CustomerPhone   *string    `db:"customer_phone"`
	CustomerEmail   *string    `db:"customer_email"`
	ChildName       *string    `db:"child_name"`
	ChildBirthMonth *string    `db:"child_birth_month"`
	Notes           *string    `db:"notes"`
	ValidFrom       *time.Time `db:"valid_from"`
	UsedDates       []int      `db:"used_dates"`
	LastUsedAt      *time.Time `db:"last_used_at"`
}

func (c *PunchCard) IsWeekly() bool {
	return strings.HasPrefix(c.CardType, "weekly")
}

func (c *PunchCard) IsMonthly() bool {
	return strings.HasPrefix(c.CardType, "monthly")
}

// IsTimeBased reports whether the balance counts days instead of rides.
func (c *PunchCard) IsTimeBased() bool {
	return c.IsWeekly() || c.IsMonthly()
}

// PassDuration returns the inclusive day-offset bound for time-based
// passes. Meaningless for fixed-ride cards.
func (c *PunchCard) PassDuration() int {
	if c.IsMonthly() {
		return MonthlyPassDuration
	}
	return WeeklyPassDuration
}

// HasUsedDay reports whether the given day offset was already redeemed.
func (c *PunchCard) HasUsedDay(offset int) bool {
	for _, d := range c.UsedDates {
		if d == offset {
			return true
		}
	}
	return false
}

func IsTimeBasedType(cardType string) bool {
	return strings.HasPrefix(cardType, "weekly") || strings.HasPrefix(cardType, "monthly")
}
