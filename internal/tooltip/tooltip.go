package tooltip

import (
	"fmt"
	"strconv"
	"strings"

	"runtime-report/internal/catalog"
	"runtime-report/internal/model"
)

// Params is the narrowed (time, date, source id) tuple for one hovered
// cell. Interaction payloads from a rendering engine are loosely typed;
// anything that does not narrow cleanly means "no tooltip".
type Params struct {
	Time     string
	Date     string
	SourceID int
}

// ParseParams narrows a loose interaction payload into Params. The
// payload is expected to carry a "value" tuple of at least
// [time, date, sourceId]; the id may arrive as a float (JSON number) or
// an int. Returns false on any shape mismatch.
func ParseParams(payload map[string]any) (Params, bool) {
	value, ok := payload["value"].([]any)
	if !ok || len(value) < 3 {
		return Params{}, false
	}
	timeLabel, ok := value[0].(string)
	if !ok {
		return Params{}, false
	}
	date, ok := value[1].(string)
	if !ok {
		return Params{}, false
	}
	var id int
	switch v := value[2].(type) {
	case float64:
		id = int(v)
	case int:
		id = v
	default:
		return Params{}, false
	}
	return Params{Time: timeLabel, Date: date, SourceID: id}, true
}

// Resolve reconstructs the full detail block for one sample. It returns
// the empty string when the date, the time within it, or the source id
// (looked up against the full catalog, not just the displayed subset)
// cannot be found; an empty result means no popup is shown.
func Resolve(timeLabel, date string, sourceID int, ds *model.RuntimeDataset) string {
	if ds == nil {
		return ""
	}
	points, ok := ds.Data[date]
	if !ok {
		return ""
	}
	var point *model.DataPoint
	for i := range points {
		if points[i].Time == timeLabel {
			point = &points[i]
			break
		}
	}
	if point == nil {
		return ""
	}
	source, ok := catalog.FindByID(ds.Meta.Sources, sourceID)
	if !ok {
		return ""
	}

	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "<p><b>%s:</b> %s</p>\n", label, value)
	}
	b.WriteString("<div>\n")
	line("Time", timeLabel)
	line("Date", date)
	line("Source", source.Display)
	line("Description", source.Desc)
	line("Battery Voltage", num(point.BattVolt)+"V")
	line("Battery Current", num(point.BattCurr)+"A")
	line("Rectifier Current", num(point.RectCurr)+"A")
	line("Load Current", num(point.LoadCurr)+"A")
	line("System Voltage", num(point.SysVolt)+"V")
	b.WriteString("</div>")
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
