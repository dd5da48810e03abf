package models

// DayBucket - message counters for one weekday
type DayBucket struct {
	Sent    int `json:"sent"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
}

// SentimentRecord - reply sentiment counters as sent by the analytics API.
// The wire field is spelled unSatisified upstream; keep it.
type SentimentRecord struct {
	Satisfied    int `json:"satisfied"`
	Neutral      int `json:"neutral"`
	UnSatisified int `json:"unSatisified"`
}

// AnalyticsPayload - response of GET /api/analytics/
type AnalyticsPayload struct {
	ByDay     map[string]DayBucket `json:"byDay,omitempty"`
	Sentiment *SentimentRecord     `json:"sentiment,omitempty"`
	Total     *DayBucket           `json:"total,omitempty"`
}

// WeekRow - one chart-ready weekday row
type WeekRow struct {
	Name     string `json:"name"` // MON..SUN
	Sent     int    `json:"sent"`
	Read     int    `json:"read"`
	Response int    `json:"response"`
}

// SentimentRow - the single chart-ready sentiment row
type SentimentRow struct {
	Name        string `json:"name"` // always "sentiments"
	Satisfied   int    `json:"satisfied"`
	Neutral     int    `json:"neutral"`
	Unsatisfied int    `json:"unsatisfied"`
}

// DashboardData - transformed rows served by GET /dashboard/data.
// Activity always has 7 entries; a null entry is a weekday without data.
type DashboardData struct {
	Activity  []*WeekRow     `json:"activity"`
	Sentiment []SentimentRow `json:"sentiment"`
	Total     *DayBucket     `json:"total,omitempty"`
}
