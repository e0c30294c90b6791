package entity

import (
	"encoding/json"
	"time"
)

// Waiver is a signed liability release. Rows are append-only and never
// mutated after creation. SignatureData is the ordered stroke-point
// array captured by the signature pad, kept as raw JSON.
type Waiver struct {
	BaseSimple
	Name          string          `db:"name"`
	ChildName     *string         `db:"child_name"`
	Date          time.Time       `db:"date"`
	Location      string          `db:"location"`
	SignatureData json.RawMessage `db:"signature_data"`
}
