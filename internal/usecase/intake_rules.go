package usecase

import (
	"time"
)

// minSubmitTime is the shortest span a human plausibly needs between
// loading the waiver form and submitting it.
const minSubmitTime = 3 * time.Second

// isLikelyBot applies the form bot heuristics: a filled honeypot field
// or a submission faster than minSubmitTime. A zero formLoadedAt means
// the client did not report a load time, which is not held against it.
func isLikelyBot(honeypot string, formLoadedAt int64, now time.Time) bool {
	if honeypot != "" {
		return true
	}
	if formLoadedAt > 0 && now.Sub(time.UnixMilli(formLoadedAt)) < minSubmitTime {
		return true
	}
	return false
}
