package entity

import (
	"encoding/json"
	"time"
)

// Setting is a key/value row with upsert-by-key semantics, e.g.
// business hours per location stored as JSON.
type Setting struct {
	Key       string          `db:"key"`
	Value     json.RawMessage `db:"value"`
	UpdatedAt time.Time       `db:"updated_at"`
}
