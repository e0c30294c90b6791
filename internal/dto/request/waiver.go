package request

import "encoding/json"

// WaiverRequest is the public waiver form payload. Honeypot and
// FormLoadedAt feed the bot heuristics; legitimate browsers leave the
// honeypot empty and take longer than a bot to fill the form.
type WaiverRequest struct {
	Name          string          `json:"name"`
	ChildName     string          `json:"child_name,omitempty"`
	Date          string          `json:"date"`
	Location      string          `json:"location"`
	SignatureData json.RawMessage `json:"signature_data,omitempty"`

	Honeypot     string `json:"_hp,omitempty"`
	FormLoadedAt int64  `json:"_ts,omitempty"` // epoch milliseconds
}
