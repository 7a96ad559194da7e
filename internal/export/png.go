package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"runtime-report/internal/chart"
	"runtime-report/internal/model"
)

// Options controls the raster dimensions of an exported report.
type Options struct {
	Width  int
	Height int
}

const (
	defaultWidth  = 1400
	defaultHeight = 700

	marginLeft   = 90
	marginRight  = 24
	marginTop    = 64
	marginBottom = 48
)

// Filename derives the artifact name from the active range's start date.
func Filename(rng model.DateRange) string {
	return fmt.Sprintf("runtime-report-%s.png", rng.Start)
}

// Render paints the configured heatmap into a PNG. A config with zero rows
// still produces a valid image of the empty grid frame.
func Render(cfg chart.Config, opts Options) ([]byte, error) {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	r, err := gochart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)

	r.SetFillColor(drawing.ColorWhite)
	fillRect(r, 0, 0, width, height)

	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom
	cols := len(cfg.XAxis.Categories)
	rows := len(cfg.YAxis.Categories)

	if cols > 0 && rows > 0 {
		cellW := float64(plotW) / float64(cols)
		cellH := float64(plotH) / float64(rows)

		colIndex := make(map[string]int, cols)
		for i, label := range cfg.XAxis.Categories {
			colIndex[label] = i
		}
		rowIndex := make(map[string]int, rows)
		for i, date := range cfg.YAxis.Categories {
			rowIndex[date] = i
		}

		for _, cell := range cfg.Series {
			col, okX := colIndex[cell.Time]
			row, okY := rowIndex[cell.Date]
			if !okX || !okY {
				continue
			}
			x0 := marginLeft + int(float64(col)*cellW)
			y0 := marginTop + int(float64(row)*cellH)
			x1 := marginLeft + int(float64(col+1)*cellW)
			y1 := marginTop + int(float64(row+1)*cellH)
			r.SetFillColor(parseColor(cell.Color))
			fillRect(r, x0, y0, x1-x0, y1-y0)
		}

		drawDateLabels(r, cfg.YAxis.Categories, cellH)
	}

	drawFrame(r, width, height)
	drawTicks(r, cfg.XAxis, float64(plotW), height)
	drawLegend(r, cfg.Legend)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the config and writes the PNG to path.
func WriteFile(path string, cfg chart.Config, opts Options) error {
	png, err := Render(cfg, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}

func drawFrame(r gochart.Renderer, width, height int) {
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1.0)
	r.MoveTo(marginLeft, marginTop)
	r.LineTo(width-marginRight, marginTop)
	r.LineTo(width-marginRight, height-marginBottom)
	r.LineTo(marginLeft, height-marginBottom)
	r.Close()
	r.Stroke()
}

func drawTicks(r gochart.Renderer, axis chart.Axis, plotW float64, height int) {
	if len(axis.Categories) == 0 {
		return
	}
	r.SetFontSize(10)
	r.SetFontColor(drawing.ColorBlack)
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1.0)

	cellW := plotW / float64(len(axis.Categories))
	baseY := height - marginBottom
	for _, idx := range axis.TickIndexes {
		if idx < 0 || idx >= len(axis.Categories) {
			continue
		}
		x := marginLeft + int((float64(idx)+0.5)*cellW)
		r.MoveTo(x, baseY)
		r.LineTo(x, baseY+5)
		r.Stroke()

		label := axis.Categories[idx]
		box := r.MeasureText(label)
		r.Text(label, x-box.Width()/2, baseY+20)
	}
}

func drawDateLabels(r gochart.Renderer, dates []string, cellH float64) {
	r.SetFontSize(10)
	r.SetFontColor(drawing.ColorBlack)

	// Thin labels when rows get shorter than a line of text.
	step := 1
	if cellH < 12 {
		step = int(12.0/cellH) + 1
	}
	for i := 0; i < len(dates); i += step {
		y := marginTop + int((float64(i)+0.5)*cellH) + 4
		box := r.MeasureText(dates[i])
		r.Text(dates[i], marginLeft-box.Width()-8, y)
	}
}

func drawLegend(r gochart.Renderer, pieces []chart.LegendPiece) {
	r.SetFontSize(11)
	x := marginLeft
	for _, p := range pieces {
		r.SetFillColor(parseColor(p.Color))
		fillRect(r, x, marginTop-36, 14, 14)

		r.SetFontColor(drawing.ColorBlack)
		r.Text(p.Label, x+20, marginTop-24)
		box := r.MeasureText(p.Label)
		x += 20 + box.Width() + 28
	}
}

func fillRect(r gochart.Renderer, x, y, w, h int) {
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.Close()
	r.Fill()
}

func parseColor(c string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
}
