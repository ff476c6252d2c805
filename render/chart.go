package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ChartWidth  = 600.0
	ChartHeight = 200.0

	gainColor = "rgba(74,222,128,1)"
	lossColor = "rgba(248,113,113,1)"
	gainFill  = "rgba(74,222,128,0.1)"
	lossFill  = "rgba(248,113,113,0.1)"
)

// ChartPoint is one sample mapped into SVG coordinates
type ChartPoint struct {
	X     float64
	Y     float64
	Label string
}

// Chart is the geometry of a price line chart without axes
type Chart struct {
	Width    float64
	Height   float64
	Points   []ChartPoint
	Line     string // polyline points attribute
	Area     string // closed path under the line
	Stroke   string
	Fill     string
	Positive bool
}

// NewChart maps prices onto a width x height canvas. The first sample sits on the
// left edge and the last on the right edge; the lowest price touches the bottom and
// the highest the top. A flat series is drawn at mid-height. The trend colour
// follows the sign of last minus first. It returns nil when there are no samples.
func NewChart(prices []float64, width, height float64) *Chart {
	if len(prices) == 0 {
		return nil
	}

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices {
		minPrice = min(minPrice, p)
		maxPrice = max(maxPrice, p)
	}
	spread := maxPrice - minPrice

	points := make([]ChartPoint, len(prices))
	for i, p := range prices {
		x := 0.0
		if len(prices) > 1 {
			x = width * float64(i) / float64(len(prices)-1)
		}

		y := height / 2
		if spread > 0 {
			y = height - (p-minPrice)/spread*height
		}

		points[i] = ChartPoint{X: x, Y: y, Label: fmt.Sprintf("$%.2f", p)}
	}

	positive := prices[len(prices)-1]-prices[0] >= 0
	chart := &Chart{
		Width:    width,
		Height:   height,
		Points:   points,
		Line:     linePoints(points),
		Area:     areaPath(points, height),
		Positive: positive,
		Stroke:   lossColor,
		Fill:     lossFill,
	}
	if positive {
		chart.Stroke = gainColor
		chart.Fill = gainFill
	}
	return chart
}

// HoverWidth is the width of the invisible hover target around each point
func (c *Chart) HoverWidth() float64 {
	if len(c.Points) < 2 {
		return c.Width
	}
	return c.Width / float64(len(c.Points)-1)
}

func linePoints(points []ChartPoint) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(coord(p.X))
		sb.WriteByte(',')
		sb.WriteString(coord(p.Y))
	}
	return sb.String()
}

func areaPath(points []ChartPoint, height float64) string {
	var sb strings.Builder
	sb.WriteString("M" + coord(points[0].X) + "," + coord(height))
	for _, p := range points {
		sb.WriteString(" L" + coord(p.X) + "," + coord(p.Y))
	}
	sb.WriteString(" L" + coord(points[len(points)-1].X) + "," + coord(height) + " Z")
	return sb.String()
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
