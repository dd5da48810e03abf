package services

import "messaging-dashboard/internal/models"

// weekday maps an analytics byDay key to its chart label. The slice order is
// the display order.
type weekday struct {
	key  string
	abbr string
}

var weekdays = [...]weekday{
	{key: "monday", abbr: "MON"},
	{key: "tuesday", abbr: "TUE"},
	{key: "wednesday", abbr: "WED"},
	{key: "thursday", abbr: "THU"},
	{key: "friday", abbr: "FRI"},
	{key: "saturday", abbr: "SAT"},
	{key: "sunday", abbr: "SUN"},
}

// DaysPerWeek is the length of every TransformWeeklyActivity result.
const DaysPerWeek = len(weekdays)

// SentimentLabel is the category name of the single sentiment row.
const SentimentLabel = "sentiments"

// TransformWeeklyActivity returns one row per weekday, Monday first.
// Weekdays missing from byDay are nil. Keys other than the seven lowercase
// weekday names are ignored.
func TransformWeeklyActivity(byDay map[string]models.DayBucket) []*models.WeekRow {
	rows := make([]*models.WeekRow, DaysPerWeek)
	for i, day := range weekdays {
		bucket, ok := byDay[day.key]
		if !ok {
			continue
		}
		rows[i] = &models.WeekRow{
			Name:     day.abbr,
			Sent:     bucket.Sent,
			Read:     bucket.Read,
			Response: bucket.Replied,
		}
	}
	return rows
}

// TransformSentiment returns a single-row slice, or nil when s is nil.
func TransformSentiment(s *models.SentimentRecord) []models.SentimentRow {
	if s == nil {
		return nil
	}
	return []models.SentimentRow{{
		Name:        SentimentLabel,
		Satisfied:   s.Satisfied,
		Neutral:     s.Neutral,
		Unsatisfied: s.UnSatisified,
	}}
}

// BuildDashboardData runs both transformers over a payload. A nil payload
// yields seven empty weekdays and no sentiment row.
func BuildDashboardData(p *models.AnalyticsPayload) models.DashboardData {
	if p == nil {
		p = &models.AnalyticsPayload{}
	}
	return models.DashboardData{
		Activity:  TransformWeeklyActivity(p.ByDay),
		Sentiment: TransformSentiment(p.Sentiment),
		Total:     p.Total,
	}
}
