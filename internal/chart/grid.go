package chart

// Point is a (height, weight) coordinate on the chart plane.
type Point struct {
	HeightM  float64
	WeightKg float64
}

// Grid holds BMI sampled on a uniform height x weight lattice.
// BMI[i][j] is the value at Weights[i], Heights[j].
type Grid struct {
	Heights []float64
	Weights []float64
	BMI     [][]float64
}

func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}

func NewGrid(d Domain, heightSamples, weightSamples int) *Grid {
	g := &Grid{
		Heights: linspace(d.HeightMin, d.HeightMax, heightSamples),
		Weights: linspace(d.WeightMin, d.WeightMax, weightSamples),
	}
	g.BMI = make([][]float64, len(g.Weights))
	for i, w := range g.Weights {
		row := make([]float64, len(g.Heights))
		for j, h := range g.Heights {
			row[j] = w / (h * h)
		}
		g.BMI[i] = row
	}
	return g
}

// crossing finds the weight at which column j reaches level, interpolating
// linearly between the two bracketing rows. ok is false when the level lies
// outside the column's range.
func (g *Grid) crossing(j int, level float64) (w float64, ok bool) {
	for i := 0; i+1 < len(g.Weights); i++ {
		lo, hi := g.BMI[i][j], g.BMI[i+1][j]
		if lo <= level && level <= hi && hi > lo {
			t := (level - lo) / (hi - lo)
			return g.Weights[i] + t*(g.Weights[i+1]-g.Weights[i]), true
		}
	}
	return 0, false
}

// Contour returns the iso-line of level, one point per height column in
// which the level is reached.
func (g *Grid) Contour(level float64) []Point {
	var pts []Point
	for j, h := range g.Heights {
		if w, ok := g.crossing(j, level); ok {
			pts = append(pts, Point{HeightM: h, WeightKg: w})
		}
	}
	return pts
}

// edge is like crossing but clamps to the weight range: a level below the
// column returns the lowest weight and a level above returns the highest.
func (g *Grid) edge(j int, level float64) float64 {
	first, last := g.BMI[0][j], g.BMI[len(g.Weights)-1][j]
	switch {
	case level <= first:
		return g.Weights[0]
	case level >= last:
		return g.Weights[len(g.Weights)-1]
	}
	w, _ := g.crossing(j, level)
	return w
}

// Envelope returns, for each height column, the weights at which BMI equals
// lower and upper, clamped to the grid.
func (g *Grid) Envelope(lower, upper float64) (bottom, top []Point) {
	bottom = make([]Point, len(g.Heights))
	top = make([]Point, len(g.Heights))
	for j, h := range g.Heights {
		bottom[j] = Point{HeightM: h, WeightKg: g.edge(j, lower)}
		top[j] = Point{HeightM: h, WeightKg: g.edge(j, upper)}
	}
	return bottom, top
}

// BandCounts tallies grid samples per band, where band k covers
// [levels[k], levels[k+1]). Samples outside every band are not counted.
func (g *Grid) BandCounts(levels []float64) []int {
	counts := make([]int, len(levels)-1)
	for _, row := range g.BMI {
		for _, v := range row {
			for k := 0; k+1 < len(levels); k++ {
				if v >= levels[k] && v < levels[k+1] {
					counts[k]++
					break
				}
			}
		}
	}
	return counts
}
