package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Geometry in pixels.
const (
	defaultWidth  = 500
	defaultHeight = 300

	marginTop    = 5
	marginRight  = 30
	marginLeft   = 20
	marginBottom = 5

	yAxisWidth   = 60
	xAxisHeight  = 30
	legendHeight = 26

	valueTickCount = 5
	categoryGap    = 0.1 // of the band, on each side
	barGap         = 4

	legendSwatch  = 10
	legendSpacing = 12
	legendCharW   = 6
)

var printer = message.NewPrinter(language.English)

// Tick is a labelled position on one axis.
type Tick struct {
	Label string
	Pos   int
}

// Bar is a single drawn bar.
type Bar struct {
	Series   string
	Category string
	Value    float64
	Box      chart.Box
	Color    drawing.Color
	Tooltip  string
}

// LegendItem is one series entry under the plot.
type LegendItem struct {
	Label  string
	Color  drawing.Color
	Swatch chart.Box
}

// Plot is the resolved geometry of a chart, independent of the output format.
type Plot struct {
	Width  int
	Height int
	Area   chart.Box

	CategoryTicks []Tick // x positions, one per record
	ValueTicks    []Tick // y positions, bottom to top
	Bars          []Bar
	Legend        []LegendItem
}

// Layout places records on a grouped bar chart. Each non-nil record gets one
// bar per series that has a numeric value; nil records keep an empty band.
func Layout(records []Record, spec Spec) Plot {
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	p := Plot{
		Width:  width,
		Height: height,
		Area: chart.Box{
			Top:    marginTop,
			Left:   marginLeft + yAxisWidth,
			Right:  width - marginRight,
			Bottom: height - marginBottom - legendHeight - xAxisHeight,
		},
	}

	top, step := valueScale(maxValue(records, spec.Series))
	for i := 0; i < valueTickCount; i++ {
		v := step * float64(i)
		p.ValueTicks = append(p.ValueTicks, Tick{Label: formatValue(v), Pos: p.yFor(v, top)})
	}

	p.Legend = legend(spec.Series, width, height)

	if len(records) == 0 {
		return p
	}

	band := float64(p.Area.Width()) / float64(len(records))
	inner := band * (1 - 2*categoryGap)
	n := len(spec.Series)
	barWidth := 1.0
	if n > 0 {
		barWidth = math.Max(1, (inner-float64(barGap*(n-1)))/float64(n))
	}

	for i, rec := range records {
		bandLeft := float64(p.Area.Left) + band*float64(i)
		category := categoryLabel(rec, spec.CategoryKey)
		p.CategoryTicks = append(p.CategoryTicks, Tick{
			Label: category,
			Pos:   int(math.Round(bandLeft + band/2)),
		})
		if rec == nil {
			continue
		}

		x := bandLeft + band*categoryGap
		for _, s := range spec.Series {
			v, ok := numeric(rec[s.Key])
			if ok {
				left := int(math.Round(x))
				p.Bars = append(p.Bars, Bar{
					Series:   s.Key,
					Category: category,
					Value:    v,
					Box: chart.Box{
						Top:    p.yFor(math.Max(v, 0), top),
						Left:   left,
						Right:  left + int(math.Round(barWidth)),
						Bottom: p.Area.Bottom,
					},
					Color:   parseColor(s.Color),
					Tooltip: tooltip(category, s.Key, v),
				})
			}
			x += barWidth + barGap
		}
	}

	return p
}

func (p Plot) yFor(v, top float64) int {
	return p.Area.Bottom - int(math.Round(v/top*float64(p.Area.Height())))
}

func legend(series []Series, width, height int) []LegendItem {
	total := 0
	for i, s := range series {
		total += legendSwatch + 4 + len(s.Key)*legendCharW
		if i > 0 {
			total += legendSpacing
		}
	}

	x := (width - total) / 2
	y := height - marginBottom - legendHeight/2 - legendSwatch/2
	items := make([]LegendItem, 0, len(series))
	for _, s := range series {
		items = append(items, LegendItem{
			Label: s.Key,
			Color: parseColor(s.Color),
			Swatch: chart.Box{
				Top:    y,
				Left:   x,
				Right:  x + legendSwatch,
				Bottom: y + legendSwatch,
			},
		})
		x += legendSwatch + 4 + len(s.Key)*legendCharW + legendSpacing
	}
	return items
}

// valueScale returns the axis maximum and the tick step for a data maximum,
// rounding the step to 1, 2, 2.5 or 5 times a power of ten.
func valueScale(max float64) (top, step float64) {
	intervals := float64(valueTickCount - 1)
	if max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		return intervals, 1
	}

	raw := max / intervals
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		step = mag
	case norm <= 2:
		step = 2 * mag
	case norm <= 2.5:
		step = 2.5 * mag
	case norm <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	return step * intervals, step
}

func maxValue(records []Record, series []Series) float64 {
	max := 0.0
	for _, rec := range records {
		for _, s := range series {
			if v, ok := numeric(rec[s.Key]); ok && v > max {
				max = v
			}
		}
	}
	return max
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func categoryLabel(rec Record, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func tooltip(category, series string, v float64) string {
	if category == "" {
		return fmt.Sprintf("%s: %s", series, formatValue(v))
	}
	return fmt.Sprintf("%s · %s: %s", category, series, formatValue(v))
}

// formatValue prints whole numbers with thousands separators.
func formatValue(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
