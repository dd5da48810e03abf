package charts

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorBackground = drawing.ColorFromHex("ffffff")
	colorGrid       = drawing.ColorFromHex("cccccc")
	colorAxis       = drawing.ColorFromHex("666666")
	colorText       = drawing.ColorFromHex("333333")

	gridDash = []float64{3, 3}
)

const fontSize = 9.0

// Render lays out records and writes the chart in the given format.
func Render(w io.Writer, records []Record, spec Spec, format Format) error {
	return Layout(records, spec).Draw(w, format)
}

// Draw paints the plot through the go-chart renderer for format.
func (p Plot) Draw(w io.Writer, format Format) error {
	provider := chart.SVG
	if format == FormatPNG {
		provider = chart.PNG
	}

	r, err := provider(p.Width, p.Height)
	if err != nil {
		return fmt.Errorf("create %s renderer: %w", format, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load chart font: %w", err)
	}

	pt := painter{r: r, font: font}
	pt.box(chart.Box{Top: 0, Left: 0, Right: p.Width, Bottom: p.Height}, colorBackground)
	pt.grid(p)
	pt.axes(p)
	for _, b := range p.Bars {
		if b.Box.Height() > 0 {
			pt.box(b.Box, b.Color)
		}
	}
	pt.legend(p.Legend)

	return r.Save(w)
}

// SVG renders the plot as an inline SVG document.
func (p Plot) SVG() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Draw(&buf, FormatSVG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type painter struct {
	r    chart.Renderer
	font *truetype.Font
}

func (pt painter) grid(p Plot) {
	for _, t := range p.ValueTicks {
		pt.line(p.Area.Left, t.Pos, p.Area.Right, t.Pos, colorGrid, gridDash)
	}
	for _, t := range p.CategoryTicks {
		pt.line(t.Pos, p.Area.Top, t.Pos, p.Area.Bottom, colorGrid, gridDash)
	}
}

func (pt painter) axes(p Plot) {
	pt.line(p.Area.Left, p.Area.Bottom, p.Area.Right, p.Area.Bottom, colorAxis, nil)
	pt.line(p.Area.Left, p.Area.Top, p.Area.Left, p.Area.Bottom, colorAxis, nil)

	for _, t := range p.ValueTicks {
		pt.line(p.Area.Left-6, t.Pos, p.Area.Left, t.Pos, colorAxis, nil)
		tb := pt.measure(t.Label)
		pt.text(t.Label, p.Area.Left-8-tb.Width(), t.Pos+tb.Height()/2)
	}
	for _, t := range p.CategoryTicks {
		pt.line(t.Pos, p.Area.Bottom, t.Pos, p.Area.Bottom+6, colorAxis, nil)
		if t.Label == "" {
			continue
		}
		tb := pt.measure(t.Label)
		pt.text(t.Label, t.Pos-tb.Width()/2, p.Area.Bottom+8+tb.Height())
	}
}

func (pt painter) legend(items []LegendItem) {
	for _, it := range items {
		pt.box(it.Swatch, it.Color)
		tb := pt.measure(it.Label)
		pt.text(it.Label, it.Swatch.Right+4, it.Swatch.Top+it.Swatch.Height()/2+tb.Height()/2)
	}
}

func (pt painter) box(b chart.Box, c drawing.Color) {
	r := pt.r
	r.ResetStyle()
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.LineTo(b.Left, b.Top)
	r.Close()
	r.Fill()
}

func (pt painter) line(x1, y1, x2, y2 int, c drawing.Color, dash []float64) {
	r := pt.r
	r.ResetStyle()
	r.SetStrokeColor(c)
	r.SetStrokeWidth(1)
	if dash != nil {
		r.SetStrokeDashArray(dash)
	}
	r.MoveTo(x1, y1)
	r.LineTo(x2, y2)
	r.Stroke()
}

func (pt painter) measure(s string) chart.Box {
	pt.r.ResetStyle()
	pt.r.SetFont(pt.font)
	pt.r.SetFontSize(fontSize)
	return pt.r.MeasureText(s)
}

func (pt painter) text(s string, x, y int) {
	r := pt.r
	r.ResetStyle()
	r.SetFont(pt.font)
	r.SetFontSize(fontSize)
	r.SetFontColor(colorText)
	r.Text(s, x, y)
}
