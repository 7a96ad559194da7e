package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"runtime-report/internal/catalog"
	"runtime-report/internal/data"
	"runtime-report/internal/heatmap"
	"runtime-report/internal/model"
)

// Config is a rendering-engine-neutral description of the runtime heatmap:
// axis categories, legend pieces and the cell series. Tooltip content is
// not precomputed; renderers call back into tooltip.Resolve with a hovered
// cell's (time, date, source id).
type Config struct {
	XAxis  Axis           `json:"xAxis"`
	YAxis  Axis           `json:"yAxis"`
	Legend []LegendPiece  `json:"legend"`
	Series []heatmap.Cell `json:"series"`

	// LegendDimension is the series tuple column holding the categorical
	// value the legend maps on.
	LegendDimension int `json:"legendDimension"`
}

// Axis is one category axis. TickIndexes lists the category positions that
// render a tick and label; positions not listed stay unlabeled.
type Axis struct {
	Categories  []string `json:"categories"`
	TickIndexes []int    `json:"tickIndexes,omitempty"`
}

// LegendPiece maps one categorical value to its label and draw color.
type LegendPiece struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// TimeLabels enumerates the fixed x-axis: 24 hours by 12 five-minute
// steps, "00:00" through "23:55".
func TimeLabels() []string {
	labels := make([]string, 0, 288)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 5 {
			labels = append(labels, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return labels
}

// TickVisible is the axis thinning rule: a label renders only on even
// whole hours, giving 12 ticks across the 288 categories.
func TickVisible(label string) bool {
	if !strings.HasSuffix(label, ":00") {
		return false
	}
	hour, err := strconv.Atoi(strings.SplitN(label, ":", 2)[0])
	if err != nil {
		return false
	}
	return hour%2 == 0
}

// Build composes the full chart configuration for a dataset and range.
// An empty or inverted range yields zero rows and zero cells, which
// renders as an empty grid.
func Build(ds *model.RuntimeDataset, rng model.DateRange) Config {
	labels := TimeLabels()
	ticks := make([]int, 0, 12)
	for i, l := range labels {
		if TickVisible(l) {
			ticks = append(ticks, i)
		}
	}

	days := make([]string, 0)
	for _, date := range data.Dates(ds) {
		if rng.Contains(date) {
			days = append(days, date)
		}
	}
	sort.Strings(days)

	var sources []model.RuntimeSource
	if ds != nil {
		sources = ds.Meta.Sources
	}
	displayed := catalog.FilterDisplayed(sources)
	legend := make([]LegendPiece, 0, len(displayed))
	for _, s := range displayed {
		legend = append(legend, LegendPiece{Value: s.Value, Label: s.Display, Color: s.Color})
	}

	return Config{
		XAxis:           Axis{Categories: labels, TickIndexes: ticks},
		YAxis:           Axis{Categories: days},
		Legend:          legend,
		Series:          heatmap.Transform(ds, rng, displayed),
		LegendDimension: 2,
	}
}
