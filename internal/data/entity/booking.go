package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	StartTime     time.Time     `db:"start_time"`
	EndTime       time.Time     `db:"end_time"`
	CustomerName  string        `db:"customer_name"`
	CustomerPhone string        `db:"customer_phone"`
	ChildName     *string       `db:"child_name"`
	ChildAge      *int          `db:"child_age"`
	PackageType   string        `db:"package_type"`
	DepositAmount float64       `db:"deposit_amount"`
	Notes         *string       `db:"notes"`
	Status        BookingStatus `db:"status"`
}

// Overlaps reports whether [aStart, aEnd) intersects [bStart, bEnd).
// Touching boundaries (aEnd == bStart) are not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
