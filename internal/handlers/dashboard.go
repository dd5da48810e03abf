package handlers

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"messaging-dashboard/config"
	"messaging-dashboard/internal/charts"
	"messaging-dashboard/internal/models"
	"messaging-dashboard/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	fetcher services.AnalyticsFetcher
	cfg     *config.Config
	logger  *zap.Logger
}

func NewDashboardHandler(fetcher services.AnalyticsFetcher, cfg *config.Config, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger.Named("dashboard"),
	}
}

// dashboardState is the only state a page view holds: the last settled
// payload. It starts empty and is replaced as a whole, never merged.
type dashboardState struct {
	payload models.AnalyticsPayload
}

func (s *dashboardState) settle(p *models.AnalyticsPayload) {
	if p == nil {
		s.payload = models.AnalyticsPayload{}
		return
	}
	s.payload = *p
}

func (s *dashboardState) data() models.DashboardData {
	return services.BuildDashboardData(&s.payload)
}

type chartView struct {
	Title  string
	Class  string
	Width  int
	Height int
	SVG    template.HTML
	Bars   []charts.Bar
}

type pageView struct {
	Total     *models.DayBucket
	Activity  chartView
	Sentiment chartView
}

// ShowDashboard renders the dashboard page
// @Summary Analytics dashboard page
// @Description Fetches message analytics once and renders the weekly activity and sentiment bar charts. A failed fetch renders empty charts.
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *DashboardHandler) ShowDashboard(c *gin.Context) {
	state, ok := h.load(c.Request.Context())
	if !ok {
		return
	}

	data := state.data()
	page := pageView{
		Total:     data.Total,
		Activity:  h.chart("Message Analytics", "analytics", charts.ActivityRecords(data.Activity), h.activitySpec()),
		Sentiment: h.chart("Sentiment", "sentiment", charts.SentimentRecords(data.Sentiment), h.sentimentSpec()),
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", page)
}

// GetDashboardData godoc
// @Summary Chart-ready dashboard rows
// @Description Returns the weekly activity rows (always 7, Monday first, null for days without data) and the sentiment row
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardData
// @Router /dashboard/data [get]
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	state, ok := h.load(c.Request.Context())
	if !ok {
		return
	}

	data := state.data()
	if data.Sentiment == nil {
		data.Sentiment = []models.SentimentRow{}
	}
	c.JSON(http.StatusOK, data)
}

// GetChart godoc
// @Summary Render one dashboard chart
// @Description Renders the activity or sentiment chart as an image
// @Tags dashboard
// @Produce image/svg+xml
// @Produce image/png
// @Param name path string true "Chart name: activity or sentiment"
// @Param format query string false "svg or png" default(svg)
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /charts/{name} [get]
func (h *DashboardHandler) GetChart(c *gin.Context) {
	name := c.Param("name")
	if name != "activity" && name != "sentiment" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "chart_not_found",
			Message: "Unknown chart " + name,
		})
		return
	}

	format, err := charts.ParseFormat(c.DefaultQuery("format", "svg"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_format",
			Message: err.Error(),
		})
		return
	}

	state, ok := h.load(c.Request.Context())
	if !ok {
		return
	}
	data := state.data()

	records, spec := charts.ActivityRecords(data.Activity), h.activitySpec()
	if name == "sentiment" {
		records, spec = charts.SentimentRecords(data.Sentiment), h.sentimentSpec()
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, records, spec, format); err != nil {
		h.logger.Error("chart render failed", zap.String("chart", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to render chart",
		})
		return
	}

	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// load performs the single analytics fetch for one view. A failed fetch
// settles to the empty payload. ok is false when the request went away
// before the fetch settled; the caller must then not render.
func (h *DashboardHandler) load(ctx context.Context) (state dashboardState, ok bool) {
	payload, err := h.fetcher.FetchAnalytics(ctx)
	if ctx.Err() != nil {
		h.logger.Debug("view closed before analytics settled", zap.Error(ctx.Err()))
		return state, false
	}
	if err != nil {
		h.logger.Debug("rendering without analytics", zap.Error(err))
		payload = nil
	}

	state.settle(payload)
	return state, true
}

func (h *DashboardHandler) chart(title, class string, records []charts.Record, spec charts.Spec) chartView {
	plot := charts.Layout(records, spec)
	view := chartView{
		Title:  title,
		Class:  class,
		Width:  plot.Width,
		Height: plot.Height,
		Bars:   plot.Bars,
	}

	svg, err := plot.SVG()
	if err != nil {
		h.logger.Error("chart render failed", zap.String("chart", class), zap.Error(err))
		view.Bars = nil
		return view
	}
	view.SVG = template.HTML(svg)
	return view
}

func (h *DashboardHandler) activitySpec() charts.Spec {
	return charts.ActivitySpec(h.cfg.ChartWidth, h.cfg.ChartHeight)
}

func (h *DashboardHandler) sentimentSpec() charts.Spec {
	return charts.SentimentSpec(h.cfg.ChartWidth, h.cfg.ChartHeight)
}
