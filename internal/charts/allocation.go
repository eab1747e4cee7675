// Package charts renders portfolio figures as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when there is nothing positive to plot.
var ErrNoData = errors.New("charts: no positive values to plot")

// Slice is one labelled wedge of an allocation chart.
type Slice struct {
	Label string
	Value float64
}

// RenderAllocationPie renders slices as a PNG pie chart. Non-positive slices
// are skipped since a wedge cannot be negative.
func RenderAllocationPie(title string, slices []Slice) ([]byte, error) {
	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{Label: s.Label, Value: s.Value})
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	sort.SliceStable(values, func(i, j int) bool { return values[i].Value > values[j].Value })

	pie := chart.PieChart{
		Title:  title,
		Width:  640,
		Height: 640,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
