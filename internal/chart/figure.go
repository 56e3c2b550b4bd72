// Package chart builds the BMI category chart: filled category bands and
// dashed iso-BMI boundaries over a height x weight plane.
package chart

import (
	"github.com/yusufkecer/bmi-analyzer/internal/domain"
)

const (
	Title       = "BMI Categories by Height and Weight"
	XAxisLabel  = "Height (m)"
	YAxisLabel  = "Weight (kg)"
	Samples     = 500
	Width       = 1000
	Height      = 600
	BandOpacity = 0.6
)

type Domain struct {
	HeightMin, HeightMax float64
	WeightMin, WeightMax float64
}

var DefaultDomain = Domain{
	HeightMin: 1.0,
	HeightMax: 2.5,
	WeightMin: 30,
	WeightMax: 150,
}

// Levels are the band edges on the BMI axis.
var Levels = []float64{0, domain.UnderweightUpper, domain.NormalUpper, domain.OverweightUpper, domain.ObesityChartCeiling}

var bandColors = []string{"#FFDDDD", "#FFFFDD", "#FFFF99", "#FF9999"}

// Boundary line colors: blue, green, red.
var boundaryColors = []string{"#0000FF", "#008000", "#FF0000"}

// Band is a filled region between two BMI levels.
type Band struct {
	Category domain.Category
	Label    string
	Lower    float64
	Upper    float64
	Color    string
	Opacity  float64
	Bottom   []Point
	Top      []Point
}

// Boundary is a dashed iso-BMI line.
type Boundary struct {
	Level  float64
	Color  string
	Dashed bool
	Points []Point
}

type Figure struct {
	Title      string
	XLabel     string
	YLabel     string
	Width      int
	Height     int
	Domain     Domain
	Bands      []Band
	Boundaries []Boundary
	Legend     []string
}

// New computes the chart from a fresh grid. It has no inputs besides fixed
// constants and returns an equal figure on every call.
func New() *Figure {
	g := NewGrid(DefaultDomain, Samples, Samples)

	f := &Figure{
		Title:  Title,
		XLabel: XAxisLabel,
		YLabel: YAxisLabel,
		Width:  Width,
		Height: Height,
		Domain: DefaultDomain,
	}

	for k, c := range domain.Categories {
		bottom, top := g.Envelope(Levels[k], Levels[k+1])
		f.Bands = append(f.Bands, Band{
			Category: c,
			Label:    c.Label(),
			Lower:    Levels[k],
			Upper:    Levels[k+1],
			Color:    bandColors[k],
			Opacity:  BandOpacity,
			Bottom:   bottom,
			Top:      top,
		})
		f.Legend = append(f.Legend, c.Label())
	}

	for k, level := range Levels[1 : len(Levels)-1] {
		f.Boundaries = append(f.Boundaries, Boundary{
			Level:  level,
			Color:  boundaryColors[k],
			Dashed: true,
			Points: g.Contour(level),
		})
	}

	return f
}
