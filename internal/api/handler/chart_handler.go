package handler

import (
	"bytes"
	"log"
	"net/http"

	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/render"
)

// Page serves the dashboard HTML with the site dropdown, payload slider and both charts
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := render.Page(&buf, h.Layout); err != nil {
		log.Printf("❌ Failed to render dashboard page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// GetLayout returns the dashboard widget declaration
// @Summary Dashboard layout
// @Description Get the title, dropdown options, slider bounds and chart regions
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Layout
// @Router /layout [get]
func (h *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Layout)
}

// GetDataset summarizes the loaded launch table
// @Summary Dataset summary
// @Description Get the record count, launch sites and payload bounds of the loaded dataset
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.DatasetSummary
// @Router /dataset [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Dataset.Summary())
}

// GetSuccessPie returns the success pie chart specification
// @Summary Success pie chart
// @Description Successful launches per site, or success vs failure for one site
// @Tags charts
// @Produce json
// @Param site query string false "Launch site, empty for all sites"
// @Success 200 {object} model.PieChartSpec
// @Router /charts/success-pie [get]
func (h *Handler) GetSuccessPie(w http.ResponseWriter, r *http.Request) {
	sel := model.ParseSiteSelection(r.URL.Query().Get("site"))
	spec := dashboard.SiteSuccess(h.Dataset, sel)
	h.journal(model.ChartKindPie, sel, nil, spec.Total(), "http")

	writeJSON(w, http.StatusOK, spec)
}

// GetPayloadScatter returns the payload scatter chart specification
// @Summary Payload scatter chart
// @Description Launch outcome against payload mass, colored by booster version
// @Tags charts
// @Produce json
// @Param site query string false "Launch site, empty for all sites"
// @Param low query number false "Lower payload bound in kg (default dataset minimum)"
// @Param high query number false "Upper payload bound in kg (default dataset maximum)"
// @Success 200 {object} model.ScatterChartSpec
// @Failure 400 {string} string "Invalid payload bound"
// @Router /charts/payload-scatter [get]
func (h *Handler) GetPayloadScatter(w http.ResponseWriter, r *http.Request) {
	sel, err := h.selectionFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	spec := dashboard.PayloadScatter(h.Dataset, sel.Site, sel.Range)
	h.journal(model.ChartKindScatter, sel.Site, &sel.Range, spec.PointCount(), "http")

	writeJSON(w, http.StatusOK, spec)
}

// SuccessPieImage renders the success pie chart in the given format
// @Summary Success pie chart image
// @Description Server-rendered success pie chart (SVG or PNG)
// @Tags charts
// @Produce image/svg+xml
// @Produce image/png
// @Param site query string false "Launch site, empty for all sites"
// @Success 200 {file} file
// @Router /charts/success-pie.svg [get]
// @Router /charts/success-pie.png [get]
func (h *Handler) SuccessPieImage(format render.Format) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := model.ParseSiteSelection(r.URL.Query().Get("site"))
		spec := dashboard.SiteSuccess(h.Dataset, sel)

		var buf bytes.Buffer
		if err := render.RenderPie(&buf, spec, format); err != nil {
			log.Printf("❌ Failed to render pie chart: %v", err)
			http.Error(w, "Failed to render chart", http.StatusInternalServerError)
			return
		}
		h.journal(model.ChartKindPie, sel, nil, spec.Total(), "http")

		writeImage(w, format, buf.Bytes())
	}
}

// PayloadScatterImage renders the payload scatter chart in the given format
// @Summary Payload scatter chart image
// @Description Server-rendered payload scatter chart (SVG or PNG)
// @Tags charts
// @Produce image/svg+xml
// @Produce image/png
// @Param site query string false "Launch site, empty for all sites"
// @Param low query number false "Lower payload bound in kg"
// @Param high query number false "Upper payload bound in kg"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid payload bound"
// @Router /charts/payload-scatter.svg [get]
// @Router /charts/payload-scatter.png [get]
func (h *Handler) PayloadScatterImage(format render.Format) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		sel, err := h.selectionFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		spec := dashboard.PayloadScatter(h.Dataset, sel.Site, sel.Range)

		var buf bytes.Buffer
		if err := render.RenderScatter(&buf, spec, format); err != nil {
			log.Printf("❌ Failed to render scatter chart: %v", err)
			http.Error(w, "Failed to render chart", http.StatusInternalServerError)
			return
		}
		h.journal(model.ChartKindScatter, sel.Site, &sel.Range, spec.PointCount(), "http")

		writeImage(w, format, buf.Bytes())
	}
}

func writeImage(w http.ResponseWriter, format render.Format, data []byte) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}
