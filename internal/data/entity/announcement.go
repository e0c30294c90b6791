package entity

// Announcement is one immutable version in the broadcast-message log.
// "Current" is always derived by query (latest row, or latest active
// row for the public site), never by in-place content mutation.
type Announcement struct {
	BaseSimple
	Message  string `db:"message"`
	IsActive bool   `db:"is_active"`
}
