package catalog

import "runtime-report/internal/model"

// DisplayedSourceNames is the fixed allow-list of source names that ever
// appear on the legend or as cell colors. All other catalog sources exist
// only for tooltip lookups.
var DisplayedSourceNames = []string{
	"RtBatt", // Battery
	"RtBS",   // Battery Solar
	"RtDB",   // Genset Battery
	"RtDSB",  // Genset Solar Battery
}

// FilterDisplayed returns, in catalog order, the sources whose name is in
// the allow-list. Names absent from the catalog just shorten the result.
func FilterDisplayed(sources []model.RuntimeSource) []model.RuntimeSource {
	out := make([]model.RuntimeSource, 0, len(DisplayedSourceNames))
	for _, s := range sources {
		if isDisplayed(s.Name) {
			out = append(out, s)
		}
	}
	return out
}

// FindByID looks up a source by categorical id in the full catalog.
func FindByID(sources []model.RuntimeSource, id int) (model.RuntimeSource, bool) {
	for _, s := range sources {
		if s.Value == id {
			return s, true
		}
	}
	return model.RuntimeSource{}, false
}

func isDisplayed(name string) bool {
	for _, n := range DisplayedSourceNames {
		if n == name {
			return true
		}
	}
	return false
}
