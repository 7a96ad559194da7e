package model

import "testing"

func TestDateRange_Contains(t *testing.T) {
	rng := DateRange{Start: "2024-06-01", End: "2024-06-10"}

	cases := []struct {
		date string
		want bool
	}{
		{"2024-06-01", true},
		{"2024-06-05", true},
		{"2024-06-10", true},
		{"2024-05-31", false},
		{"2024-06-11", false},
	}
	for _, c := range cases {
		if got := rng.Contains(c.date); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestDateRange_InvertedContainsNothing(t *testing.T) {
	rng := DateRange{Start: "2024-06-10", End: "2024-06-01"}
	for _, date := range []string{"2024-06-01", "2024-06-05", "2024-06-10"} {
		if rng.Contains(date) {
			t.Errorf("inverted range should contain nothing, but contains %q", date)
		}
	}
}

func TestDefaultRange(t *testing.T) {
	ds := &RuntimeDataset{Data: map[string][]DataPoint{
		"2024-03-15": nil,
		"2024-01-02": nil,
		"2024-02-20": nil,
	}}
	rng := DefaultRange(ds)
	if rng.Start != "2024-01-02" || rng.End != "2024-03-15" {
		t.Fatalf("DefaultRange = %+v, want {2024-01-02 2024-03-15}", rng)
	}
}

func TestDefaultRange_Empty(t *testing.T) {
	if rng := DefaultRange(nil); rng != (DateRange{}) {
		t.Fatalf("DefaultRange(nil) = %+v, want zero range", rng)
	}
	if rng := DefaultRange(&RuntimeDataset{}); rng != (DateRange{}) {
		t.Fatalf("DefaultRange(empty) = %+v, want zero range", rng)
	}
}
