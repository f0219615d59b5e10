package train

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Point is a single plotted observation.
type Point struct {
	X, Y float64
}

// ProgressBoard records named series of points as training progresses
// and plots them as colored terminal traces. To smooth noisy metrics,
// every Every raw points are averaged into a single drawn point.
//
// A nil Out suppresses rendering but still records, which keeps the
// board usable in tests and headless runs.
type ProgressBoard struct {
	// Every is the number of raw points averaged into one drawn point.
	Every int
	// Width is the width of the rendered trace in characters.
	Width int
	// Out receives rendered lines. If nil, nothing is rendered.
	Out io.Writer

	pending map[string][]Point
	series  map[string][]Point
	colors  map[string]*color.Color
	order   []string
}

var seriesPalette = []color.Attribute{
	color.FgCyan,
	color.FgMagenta,
	color.FgYellow,
	color.FgGreen,
}

// NewProgressBoard returns a ProgressBoard averaging every n points.
func NewProgressBoard(n int) *ProgressBoard {
	return &ProgressBoard{
		Every:   n,
		Width:   40,
		pending: make(map[string][]Point),
		series:  make(map[string][]Point),
		colors:  make(map[string]*color.Color),
	}
}

// Record adds the observation (x, y) to the named series. Once Every
// observations have accumulated they are averaged, appended to the
// drawn series, and rendered.
func (b *ProgressBoard) Record(name string, x, y float64) {
	if _, ok := b.pending[name]; !ok {
		b.order = append(b.order, name)
		b.colors[name] = color.New(seriesPalette[(len(b.order)-1)%len(seriesPalette)])
	}

	b.pending[name] = append(b.pending[name], Point{x, y})
	every := b.Every
	if every <= 0 {
		every = 1
	}
	if len(b.pending[name]) < every {
		return
	}

	var sumX, sumY float64
	for _, p := range b.pending[name] {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(b.pending[name]))
	mean := Point{sumX / n, sumY / n}
	b.pending[name] = b.pending[name][:0]
	b.series[name] = append(b.series[name], mean)
	b.draw(name)
}

// Points returns the drawn (averaged) points of the named series.
func (b *ProgressBoard) Points(name string) []Point {
	return b.series[name]
}

// Series returns the names of all recorded series in first-seen order.
func (b *ProgressBoard) Series() []string {
	return append([]string(nil), b.order...)
}

func (b *ProgressBoard) draw(name string) {
	if b.Out == nil {
		return
	}

	pts := b.series[name]
	last := pts[len(pts)-1]
	c := b.colors[name]
	fmt.Fprintf(b.Out, "%s x=%-10.4g y=%-12.6g %s\n",
		c.Sprintf("%-12s", name), last.X, last.Y, c.Sprint(b.trace(pts)))
}

// trace renders the series as a fixed-width bar of the most recent
// points, scaled between the series minimum and maximum.
func (b *ProgressBoard) trace(pts []Point) string {
	width := b.Width
	if width <= 0 {
		width = 40
	}
	if len(pts) > width {
		pts = pts[len(pts)-width:]
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	levels := []rune("▁▂▃▄▅▆▇█")
	out := make([]rune, len(pts))
	for i, p := range pts {
		lvl := 0
		if maxY > minY {
			lvl = int((p.Y - minY) / (maxY - minY) * float64(len(levels)-1))
		}
		out[i] = levels[lvl]
	}

	return string(out)
}
