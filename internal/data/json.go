package data

import (
	"encoding/json"
	"os"
	"sort"

	"runtime-report/internal/model"
)

func LoadRuntimeJSON(path string) (*model.RuntimeDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds model.RuntimeDataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Dates returns the dataset's date keys sorted ascending. Map iteration
// order is not stable, so every consumer that needs deterministic output
// goes through this.
func Dates(ds *model.RuntimeDataset) []string {
	if ds == nil {
		return nil
	}
	dates := make([]string, 0, len(ds.Data))
	for date := range ds.Data {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
