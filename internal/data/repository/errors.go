// Package repository persists all entities against the relational
// store. Sentinel errors defined here let higher layers distinguish
// failure scenarios without string matching.
package repository

import "errors"

// ErrNotFound is returned when a row targeted by an update or status
// change does not exist. Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")
