package services

import (
	"reflect"
	"testing"

	"messaging-dashboard/internal/models"
)

func TestTransformWeeklyActivity_OrderAndPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		byDay   map[string]models.DayBucket
		present map[int]string
	}{
		{
			name:    "nil input",
			byDay:   nil,
			present: map[int]string{},
		},
		{
			name: "subset in arbitrary order",
			byDay: map[string]models.DayBucket{
				"sunday":    {Sent: 1},
				"wednesday": {Sent: 2},
				"monday":    {Sent: 3},
			},
			present: map[int]string{0: "MON", 2: "WED", 6: "SUN"},
		},
		{
			name: "full week",
			byDay: map[string]models.DayBucket{
				"friday": {}, "monday": {}, "thursday": {}, "tuesday": {},
				"sunday": {}, "saturday": {}, "wednesday": {},
			},
			present: map[int]string{0: "MON", 1: "TUE", 2: "WED", 3: "THU", 4: "FRI", 5: "SAT", 6: "SUN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := TransformWeeklyActivity(tt.byDay)
			if len(rows) != DaysPerWeek {
				t.Fatalf("len = %d, want %d", len(rows), DaysPerWeek)
			}
			for i, row := range rows {
				abbr, want := tt.present[i]
				if !want {
					if row != nil {
						t.Errorf("rows[%d] = %+v, want placeholder", i, row)
					}
					continue
				}
				if row == nil {
					t.Errorf("rows[%d] = nil, want %s", i, abbr)
					continue
				}
				if row.Name != abbr {
					t.Errorf("rows[%d].Name = %q, want %q", i, row.Name, abbr)
				}
			}
		})
	}
}

func TestTransformWeeklyActivity_RenamesReplied(t *testing.T) {
	rows := TransformWeeklyActivity(map[string]models.DayBucket{
		"monday": {Sent: 5, Read: 3, Replied: 1},
	})

	want := &models.WeekRow{Name: "MON", Sent: 5, Read: 3, Response: 1}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}
	for i := 1; i < DaysPerWeek; i++ {
		if rows[i] != nil {
			t.Errorf("rows[%d] = %+v, want placeholder", i, rows[i])
		}
	}
}

func TestTransformWeeklyActivity_PureAndIdempotent(t *testing.T) {
	input := map[string]models.DayBucket{
		"tuesday":  {Sent: 4, Read: 2, Replied: 1},
		"saturday": {Sent: 9, Read: 8, Replied: 7},
	}
	snapshot := map[string]models.DayBucket{}
	for k, v := range input {
		snapshot[k] = v
	}

	first := TransformWeeklyActivity(input)
	second := TransformWeeklyActivity(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(input, snapshot) {
		t.Errorf("input mutated: %+v, want %+v", input, snapshot)
	}

	// rows must not alias each other between calls
	first[1].Sent = 100
	if second[1].Sent != 4 {
		t.Errorf("second call shares rows with first")
	}
}

func TestTransformWeeklyActivity_IgnoresUnknownKeys(t *testing.T) {
	valid := map[string]models.DayBucket{
		"monday": {Sent: 1, Read: 1, Replied: 1},
		"friday": {Sent: 2, Read: 2, Replied: 2},
	}
	withExtra := map[string]models.DayBucket{
		"monday": {Sent: 1, Read: 1, Replied: 1},
		"friday": {Sent: 2, Read: 2, Replied: 2},
		"funday": {Sent: 99},
		"Monday": {Sent: 42},
	}

	got := TransformWeeklyActivity(withExtra)
	want := TransformWeeklyActivity(valid)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unknown keys changed output:\n got %+v\nwant %+v", got, want)
	}
}

func TestTransformSentiment(t *testing.T) {
	got := TransformSentiment(&models.SentimentRecord{Satisfied: 10, Neutral: 5, UnSatisified: 2})
	want := []models.SentimentRow{{Name: "sentiments", Satisfied: 10, Neutral: 5, Unsatisfied: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TransformSentiment() = %+v, want %+v", got, want)
	}

	if rows := TransformSentiment(nil); len(rows) != 0 {
		t.Errorf("TransformSentiment(nil) = %+v, want empty", rows)
	}
}

func TestBuildDashboardData(t *testing.T) {
	payload := &models.AnalyticsPayload{
		ByDay:     map[string]models.DayBucket{"monday": {Sent: 5, Read: 3, Replied: 1}},
		Sentiment: &models.SentimentRecord{Satisfied: 1, Neutral: 2, UnSatisified: 3},
	}

	data := BuildDashboardData(payload)

	if len(data.Activity) != DaysPerWeek {
		t.Fatalf("len(Activity) = %d, want %d", len(data.Activity), DaysPerWeek)
	}
	if *data.Activity[0] != (models.WeekRow{Name: "MON", Sent: 5, Read: 3, Response: 1}) {
		t.Errorf("Activity[0] = %+v", data.Activity[0])
	}
	for i := 1; i < DaysPerWeek; i++ {
		if data.Activity[i] != nil {
			t.Errorf("Activity[%d] = %+v, want placeholder", i, data.Activity[i])
		}
	}
	wantSentiment := []models.SentimentRow{{Name: "sentiments", Satisfied: 1, Neutral: 2, Unsatisfied: 3}}
	if !reflect.DeepEqual(data.Sentiment, wantSentiment) {
		t.Errorf("Sentiment = %+v, want %+v", data.Sentiment, wantSentiment)
	}

	empty := BuildDashboardData(nil)
	if len(empty.Activity) != DaysPerWeek || len(empty.Sentiment) != 0 || empty.Total != nil {
		t.Errorf("BuildDashboardData(nil) = %+v", empty)
	}
}
