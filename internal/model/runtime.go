package model

// RuntimeDataset matches the JSON shape of a runtime report export.
//
// Example:
// {
//   "meta": { "sources": [ ... ] },
//   "data": { "2024-01-01": [ ... ], ... }
// }
//
// The dataset is loaded once at startup and treated as immutable; every
// chart configuration is recomputed from it in full.
type RuntimeDataset struct {
	Meta Meta                   `json:"meta"`
	Data map[string][]DataPoint `json:"data"`
}

type Meta struct {
	Sources []RuntimeSource `json:"sources"`
}

// RuntimeSource is one categorical runtime origin (battery, genset, ...).
// Value is the id space that DataPoint.SourceID references.
type RuntimeSource struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Value   int    `json:"value"`
	Color   string `json:"color"`
	Desc    string `json:"desc"`
}

// DataPoint is one sample on the fixed 5-minute grid ("HH:MM", 288 per day).
//
// SourceID may reference a source that is filtered out of the display, or
// no source at all; both cases render as a blank cell rather than an error.
type DataPoint struct {
	Time     string  `json:"time"`
	SourceID int     `json:"rtsources"`
	SysVolt  float64 `json:"sys_volt"`
	BattCurr float64 `json:"batt_curr"`
	BattVolt float64 `json:"batt_volt"`
	RectCurr float64 `json:"rect_curr"`
	LoadCurr float64 `json:"load_curr"`
}
