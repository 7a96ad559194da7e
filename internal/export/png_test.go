package export

import (
	"bytes"
	"testing"

	"runtime-report/internal/chart"
	"runtime-report/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestFilename(t *testing.T) {
	rng := model.DateRange{Start: "2024-01-01", End: "2024-01-31"}
	if got := Filename(rng); got != "runtime-report-2024-01-01.png" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestRender_ProducesPNG(t *testing.T) {
	ds := &model.RuntimeDataset{
		Meta: model.Meta{Sources: []model.RuntimeSource{
			{Name: "RtBatt", Value: 2, Display: "Battery", Color: "#ff0000"},
		}},
		Data: map[string][]model.DataPoint{
			"2024-01-01": {{Time: "00:05", SourceID: 2}},
		},
	}
	cfg := chart.Build(ds, model.DateRange{Start: "2024-01-01", End: "2024-01-01"})

	png, err := Render(cfg, Options{Width: 640, Height: 360})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("output is not a PNG (starts with % x)", png[:4])
	}
}

func TestRender_EmptyGrid(t *testing.T) {
	// A range selecting zero dates still renders the empty grid frame.
	cfg := chart.Build(nil, model.DateRange{Start: "2024-06-10", End: "2024-06-01"})

	png, err := Render(cfg, Options{})
	if err != nil {
		t.Fatalf("Render empty grid: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("empty grid did not encode as PNG")
	}
}
