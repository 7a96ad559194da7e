package catalog

import (
	"testing"

	"runtime-report/internal/model"
)

func TestFilterDisplayed_KeepsCatalogOrder(t *testing.T) {
	sources := []model.RuntimeSource{
		{Name: "RtDSB", Value: 5},
		{Name: "RtMains", Value: 1},
		{Name: "RtBatt", Value: 2},
		{Name: "RtSolar", Value: 3},
		{Name: "RtBS", Value: 4},
	}

	got := FilterDisplayed(sources)
	if len(got) != 3 {
		t.Fatalf("expected 3 displayed sources, got %d", len(got))
	}
	wantOrder := []string{"RtDSB", "RtBatt", "RtBS"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFilterDisplayed_MissingNamesShortenResult(t *testing.T) {
	sources := []model.RuntimeSource{
		{Name: "RtMains", Value: 1},
		{Name: "RtSolar", Value: 3},
	}
	if got := FilterDisplayed(sources); len(got) != 0 {
		t.Fatalf("expected no displayed sources, got %d", len(got))
	}
	if got := FilterDisplayed(nil); len(got) != 0 {
		t.Fatalf("expected empty result for nil catalog, got %d", len(got))
	}
}

func TestFindByID(t *testing.T) {
	sources := []model.RuntimeSource{
		{Name: "RtMains", Value: 1, Display: "Mains"},
		{Name: "RtBatt", Value: 2, Display: "Battery"},
	}
	s, ok := FindByID(sources, 2)
	if !ok || s.Display != "Battery" {
		t.Fatalf("FindByID(2) = %+v, %v; want Battery, true", s, ok)
	}
	if _, ok := FindByID(sources, 99); ok {
		t.Fatal("FindByID(99) should not resolve")
	}
}
