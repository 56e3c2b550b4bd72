package chart

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() gochart.RendererProvider {
	if f == SVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// Render draws the figure in the given format.
func (f *Figure) Render(w io.Writer, format Format) error {
	ch, err := f.chart()
	if err != nil {
		return err
	}
	if err := ch.Render(format.provider(), w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func (f *Figure) chart() (gochart.Chart, error) {
	var bands []gochart.Series
	for _, b := range f.Bands {
		fill, err := hexColor(b.Color)
		if err != nil {
			return gochart.Chart{}, err
		}
		translucent := fill
		translucent.A = uint8(b.Opacity * 255)
		bands = append(bands, bandSeries{
			band: b,
			style: gochart.Style{
				FillColor:   translucent,
				StrokeColor: fill,
				StrokeWidth: 8,
			},
		})
	}

	series := append([]gochart.Series{}, bands...)
	for _, l := range f.Boundaries {
		stroke, err := hexColor(l.Color)
		if err != nil {
			return gochart.Chart{}, err
		}
		style := gochart.Style{
			StrokeColor: stroke,
			StrokeWidth: 1.5,
		}
		if l.Dashed {
			style.StrokeDashArray = []float64{6, 4}
		}
		xs := make([]float64, len(l.Points))
		ys := make([]float64, len(l.Points))
		for i, p := range l.Points {
			xs[i], ys[i] = p.HeightM, p.WeightKg
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    "BMI " + strconv.FormatFloat(l.Level, 'f', 1, 64),
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}

	ch := gochart.Chart{
		Title:  f.Title,
		Width:  f.Width,
		Height: f.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:  f.XLabel,
			Range: &gochart.ContinuousRange{Min: f.Domain.HeightMin, Max: f.Domain.HeightMax},
			Ticks: ticks(f.Domain.HeightMin, f.Domain.HeightMax, 0.25, 2),
		},
		YAxis: gochart.YAxis{
			Name:  f.YLabel,
			Range: &gochart.ContinuousRange{Min: f.Domain.WeightMin, Max: f.Domain.WeightMax},
			Ticks: ticks(f.Domain.WeightMin, f.Domain.WeightMax, 20, 0),
		},
		Series: series,
	}
	// The legend lists the bands only, in category order.
	ch.Elements = []gochart.Renderable{gochart.Legend(&gochart.Chart{Series: bands})}
	return ch, nil
}

func ticks(min, max, step float64, prec int) []gochart.Tick {
	var out []gochart.Tick
	n := int((max-min)/step + 0.5)
	for i := 0; i <= n; i++ {
		v := min + float64(i)*step
		out = append(out, gochart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', prec, 64)})
	}
	return out
}

func hexColor(s string) (drawing.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// bandSeries fills the polygon enclosed by a band's top and bottom edges.
type bandSeries struct {
	band  Band
	style gochart.Style
}

func (s bandSeries) GetName() string { return s.band.Label }

func (s bandSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }

func (s bandSeries) GetStyle() gochart.Style { return s.style }

func (s bandSeries) Validate() error {
	if len(s.band.Top) == 0 || len(s.band.Top) != len(s.band.Bottom) {
		return errors.New("band edges must be non-empty and of equal length")
	}
	return nil
}

func (s bandSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, _ gochart.Style) {
	px := func(p Point) (int, int) {
		return canvasBox.Left + xrange.Translate(p.HeightM), canvasBox.Bottom - yrange.Translate(p.WeightKg)
	}

	top, bottom := s.band.Top, s.band.Bottom
	r.SetFillColor(s.style.FillColor)
	r.SetStrokeWidth(0)

	x, y := px(top[0])
	r.MoveTo(x, y)
	for _, p := range top[1:] {
		r.LineTo(px(p))
	}
	for i := len(bottom) - 1; i >= 0; i-- {
		r.LineTo(px(bottom[i]))
	}
	r.Close()
	r.Fill()
}
