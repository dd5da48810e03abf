package charts

import (
	"fmt"
	"strings"

	"messaging-dashboard/internal/models"
)

// Series colors shared by both dashboard charts.
const (
	ColorTeal      = "#009e80"
	ColorLightBlue = "#70c6ec"
	ColorDark      = "#20232a"
)

// Record is one category position of a chart. A nil Record keeps its slot on
// the category axis but draws no bars.
type Record map[string]any

// Series is one bar per category, read from Record[Key].
type Series struct {
	Key   string
	Color string // hex, with or without '#'
}

// Spec describes a grouped bar chart.
type Spec struct {
	CategoryKey string
	Series      []Series
	Width       int
	Height      int
}

// Format selects the go-chart renderer.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" (also the empty string) and "png".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// ActivitySpec is the per-weekday chart: sent, read and response per day.
func ActivitySpec(width, height int) Spec {
	return Spec{
		CategoryKey: "name",
		Series: []Series{
			{Key: "sent", Color: ColorTeal},
			{Key: "read", Color: ColorLightBlue},
			{Key: "response", Color: ColorDark},
		},
		Width:  width,
		Height: height,
	}
}

// SentimentSpec is the single-category sentiment chart.
func SentimentSpec(width, height int) Spec {
	return Spec{
		CategoryKey: "name",
		Series: []Series{
			{Key: "satisfied", Color: ColorTeal},
			{Key: "neutral", Color: ColorLightBlue},
			{Key: "unsatisfied", Color: ColorDark},
		},
		Width:  width,
		Height: height,
	}
}

// ActivityRecords converts week rows, keeping nil rows as gaps.
func ActivityRecords(rows []*models.WeekRow) []Record {
	if rows == nil {
		return nil
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		if r == nil {
			continue
		}
		out[i] = Record{
			"name":     r.Name,
			"sent":     r.Sent,
			"read":     r.Read,
			"response": r.Response,
		}
	}
	return out
}

// SentimentRecords converts sentiment rows.
func SentimentRecords(rows []models.SentimentRow) []Record {
	if rows == nil {
		return nil
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = Record{
			"name":        r.Name,
			"satisfied":   r.Satisfied,
			"neutral":     r.Neutral,
			"unsatisfied": r.Unsatisfied,
		}
	}
	return out
}
