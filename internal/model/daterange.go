package model

// DateRange is the inclusive [Start, End] window selected for viewing.
// Both ends are ISO "YYYY-MM-DD" strings, so lexicographic comparison is
// date comparison. The range is replaced as a whole on every edit, never
// mutated in place.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether date falls inside the range. An inverted range
// (Start > End) contains nothing; that is the defined behavior, not an error.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// DefaultRange returns the full span of the dataset: lexicographic min and
// max over its date keys. A nil or empty dataset yields the zero range,
// which contains nothing.
func DefaultRange(ds *RuntimeDataset) DateRange {
	var rng DateRange
	if ds == nil {
		return rng
	}
	first := true
	for date := range ds.Data {
		if first {
			rng.Start, rng.End = date, date
			first = false
			continue
		}
		if date < rng.Start {
			rng.Start = date
		}
		if date > rng.End {
			rng.End = date
		}
	}
	return rng
}
