package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"runtime-report/internal/api/models"
	"runtime-report/internal/catalog"
	"runtime-report/internal/chart"
	"runtime-report/internal/export"
	"runtime-report/internal/model"
	"runtime-report/internal/observability/metrics"
	"runtime-report/internal/tooltip"
)

// ReportHandler serves the runtime report pipeline over HTTP: chart
// configuration, tooltip lookups, displayed sources and PNG export. The
// dataset is loaded once at startup; every response is recomputed from it
// and the requested range.
type ReportHandler struct {
	dataset *model.RuntimeDataset
	export  export.Options
}

func NewReportHandler(ds *model.RuntimeDataset, opts export.Options) *ReportHandler {
	return &ReportHandler{dataset: ds, export: opts}
}

// GetConfig handles GET /api/v1/report/config?start=&end=
//
// Omitted range params default to the dataset's full span. An inverted
// range is not an error; it yields a config with zero rows and cells.
func (h *ReportHandler) GetConfig(c *gin.Context) {
	rng := h.rangeFromQuery(c)

	start := time.Now()
	cfg := chart.Build(h.dataset, rng)
	metrics.ObserveConfigBuild(time.Since(start))

	c.JSON(http.StatusOK, cfg)
}

// GetTooltip handles GET /api/v1/report/tooltip?time=&date=&source=
//
// Any shape mismatch in the interaction payload, or a lookup miss at any
// stage, returns empty content rather than an error: the client simply
// shows no popup.
func (h *ReportHandler) GetTooltip(c *gin.Context) {
	timeLabel := c.Query("time")
	date := c.Query("date")
	sourceID, err := strconv.Atoi(c.Query("source"))
	if timeLabel == "" || date == "" || err != nil {
		c.JSON(http.StatusOK, models.TooltipResponse{Content: ""})
		return
	}

	content := tooltip.Resolve(timeLabel, date, sourceID, h.dataset)
	c.JSON(http.StatusOK, models.TooltipResponse{Content: content})
}

// ExportPNG handles GET /api/v1/report/export?start=&end=
//
// With no dataset there is nothing to render; the export degrades to a
// no-op rather than an error.
func (h *ReportHandler) ExportPNG(c *gin.Context) {
	if h.dataset == nil {
		c.Status(http.StatusNoContent)
		return
	}
	rng := h.rangeFromQuery(c)
	cfg := chart.Build(h.dataset, rng)

	start := time.Now()
	png, err := export.Render(cfg, h.export)
	metrics.ObserveExport(time.Since(start), err)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EXPORT_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	name := export.Filename(rng)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "image/png", png)
}

// ListSources handles GET /api/v1/sources and returns the displayed
// subset of the catalog in catalog order.
func (h *ReportHandler) ListSources(c *gin.Context) {
	var all []model.RuntimeSource
	if h.dataset != nil {
		all = h.dataset.Meta.Sources
	}
	displayed := catalog.FilterDisplayed(all)

	sources := make([]models.SourceInfo, len(displayed))
	for i, s := range displayed {
		sources[i] = models.SourceInfo{
			Value:   s.Value,
			Name:    s.Name,
			Display: s.Display,
			Color:   s.Color,
			Desc:    s.Desc,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"sources": sources,
		"count":   len(sources),
	})
}

func (h *ReportHandler) rangeFromQuery(c *gin.Context) model.DateRange {
	rng := model.DefaultRange(h.dataset)
	if start := c.Query("start"); start != "" {
		rng.Start = start
	}
	if end := c.Query("end"); end != "" {
		rng.End = end
	}
	return rng
}
