package render

import (
	"errors"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"spacex-dashboard/internal/model"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an image output format for rendered charts
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Default chart canvas size
const (
	DefaultWidth  = 900
	DefaultHeight = 500
)

// ErrUnknownFormat is returned for image formats other than svg and png
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat validates an image format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

// pointStyle renders points only, no connecting line
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// RenderPie draws the success pie. Empty wedges are left out, and a pie with
// no positive slice renders a placeholder instead of failing.
func RenderPie(w io.Writer, spec model.PieChartSpec, format Format) error {
	if spec.Total() == 0 {
		return blank(w, format, spec.Title, DefaultWidth, DefaultHeight)
	}

	values := make([]chart.Value, 0, len(spec.Slices))
	for _, s := range spec.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
		})
	}

	pie := chart.PieChart{
		Title:  spec.Title,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Values: values,
	}
	if err := pie.Render(format.provider(), w); err != nil {
		return fmt.Errorf("rendering pie chart: %w", err)
	}
	return nil
}

// RenderScatter draws payload mass against outcome class with one colored
// series per booster version.
func RenderScatter(w io.Writer, spec model.ScatterChartSpec, format Format) error {
	if spec.PointCount() == 0 {
		return blank(w, format, spec.Title, DefaultWidth, DefaultHeight)
	}

	series := make([]chart.Series, 0, len(spec.Series))
	for i, s := range spec.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.PayloadMassKg
			ys[j] = float64(p.Class)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}

	xMin, xMax := xAxisBounds(spec)
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 140, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}

	if err := ch.Render(format.provider(), w); err != nil {
		return fmt.Errorf("rendering scatter chart: %w", err)
	}
	return nil
}

// xAxisBounds spans the selected range, widened to the plotted points so a
// zero-width range still renders.
func xAxisBounds(spec model.ScatterChartSpec) (float64, float64) {
	lo, hi := spec.Range.Low, spec.Range.High
	for _, rec := range spec.Records {
		if rec.PayloadMassKg < lo {
			lo = rec.PayloadMassKg
		}
		if rec.PayloadMassKg > hi {
			hi = rec.PayloadMassKg
		}
	}
	if hi-lo < 1 {
		lo -= 500
		hi += 500
	}
	return lo, hi
}

// blank writes a placeholder image for selections with no data
func blank(w io.Writer, format Format, title string, width, height int) error {
	if format == FormatPNG {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding placeholder: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
		`<rect width="100%%" height="100%%" fill="white"/>`+
		`<text x="50%%" y="30" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+
		`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#888">No launches match this selection</text>`+
		`</svg>`, width, height, html.EscapeString(title))
	if err != nil {
		return fmt.Errorf("writing placeholder: %w", err)
	}
	return nil
}
