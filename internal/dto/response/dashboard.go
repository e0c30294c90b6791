package response

// DailyCount is one point of a dashboard chart series.
type DailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// DailyActivity buckets ledger activity per day for the overview chart.
type DailyActivity struct {
	Day     string `json:"day"`
	Issues  int64  `json:"issues"`
	Redeems int64  `json:"redeems"`
}

type DashboardResponse struct {
	WaiversToday   int64           `json:"waivers_today"`
	UnreadMessages int64           `json:"unread_messages"`
	ActiveCards    int64           `json:"active_cards"`
	CardsToday     int64           `json:"cards_today"`
	WaiverSeries   []DailyCount    `json:"waiver_series"`
	ActivitySeries []DailyActivity `json:"activity_series"`
}
