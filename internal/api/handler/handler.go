package handler

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/export"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/store"
	"spacex-dashboard/pkg/utils"

	"github.com/google/uuid"
)

// Handler serves the dashboard over the immutable dataset loaded at startup
type Handler struct {
	Dataset *model.Dataset
	Layout  model.Layout
	Store   *store.Repository
	Exports *export.Manager
}

// New builds a handler. repo may be nil, which disables the journal.
func New(ds *model.Dataset, slider dashboard.SliderOptions, repo *store.Repository, exports *export.Manager) *Handler {
	return &Handler{
		Dataset: ds,
		Layout:  dashboard.BuildLayout(ds, slider),
		Store:   repo,
		Exports: exports,
	}
}

// writeJSON encodes v before writing any header so encode failures become a 500
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// selectionFromQuery reads site, low and high query parameters.
// Missing bounds default to the dataset payload bounds.
func (h *Handler) selectionFromQuery(r *http.Request) (model.Selection, error) {
	q := r.URL.Query()
	return h.selection(q.Get("site"), q.Get("low"), q.Get("high"))
}

func (h *Handler) selection(site, low, high string) (model.Selection, error) {
	bounds := h.Dataset.PayloadBounds()

	lo, err := utils.ParseFloatParam(low, bounds.Low)
	if err != nil {
		return model.Selection{}, err
	}
	hi, err := utils.ParseFloatParam(high, bounds.High)
	if err != nil {
		return model.Selection{}, err
	}

	return model.Selection{
		Site:  model.ParseSiteSelection(site),
		Range: model.PayloadRange{Low: lo, High: hi},
	}, nil
}

// journal records a chart computation. Failures are logged, never surfaced.
func (h *Handler) journal(chart string, site model.SiteSelection, rng *model.PayloadRange, count int, channel string) {
	if !h.Store.Enabled() {
		return
	}

	q := model.ChartQuery{
		ID:          uuid.New().String(),
		Chart:       chart,
		Site:        site.Name(),
		AllSites:    site.IsAll(),
		ResultCount: count,
		Channel:     channel,
		CreatedAt:   time.Now().UTC(),
	}
	if rng != nil {
		low, high := rng.Low, rng.High
		q.PayloadLow = &low
		q.PayloadHigh = &high
	}

	if err := h.Store.SaveQuery(q); err != nil {
		log.Printf("❌ Failed to journal %s query: %v", chart, err)
	}
}
