package heatmap

import (
	"encoding/json"

	"runtime-report/internal/data"
	"runtime-report/internal/model"
)

// Cell is one heatmap grid entry keyed by (time-of-day, date), carrying
// the categorical source id and its presentation color.
type Cell struct {
	Time     string
	Date     string
	SourceID int
	Color    string
}

// MarshalJSON emits the cell as a [time, date, value, color] tuple, the
// series row shape category-heatmap renderers consume (the legend maps
// on the tuple's third column).
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]any{c.Time, c.Date, c.SourceID, c.Color})
}

// Transform converts the dataset and a date range into the flat cell list
// for every displayed sample.
//
// Dates are visited in sorted order so output is reproducible; points
// within a day are visited in stored order. A point whose source id does
// not resolve within displayed emits nothing: a hidden or unknown
// category leaves its grid cell blank.
func Transform(ds *model.RuntimeDataset, rng model.DateRange, displayed []model.RuntimeSource) []Cell {
	cells := make([]Cell, 0)
	if ds == nil {
		return cells
	}
	for _, date := range data.Dates(ds) {
		if !rng.Contains(date) {
			continue
		}
		for _, point := range ds.Data[date] {
			source, ok := findSource(displayed, point.SourceID)
			if !ok {
				continue
			}
			cells = append(cells, Cell{
				Time:     point.Time,
				Date:     date,
				SourceID: source.Value,
				Color:    source.Color,
			})
		}
	}
	return cells
}

func findSource(sources []model.RuntimeSource, id int) (model.RuntimeSource, bool) {
	for _, s := range sources {
		if s.Value == id {
			return s, true
		}
	}
	return model.RuntimeSource{}, false
}
