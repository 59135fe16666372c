package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"spacex-dashboard/internal/export"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/pkg/router"
	"spacex-dashboard/pkg/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DownloadPattern is the route pattern for export downloads
const DownloadPattern = "/api/v1/download/*/*"

const defaultListLimit = 50

// CreateExport writes the records of a selection to a file
// @Summary Export filtered launches
// @Description Write the launches matching a site and payload range to a csv, json or yaml file
// @Tags exports
// @Accept json
// @Produce json
// @Param export body model.ExportRequest true "Selection and format"
// @Success 201 {object} model.ExportResult
// @Failure 400 {string} string "Invalid request payload"
// @Failure 500 {string} string "Internal server error"
// @Router /exports [post]
func (h *Handler) CreateExport(w http.ResponseWriter, r *http.Request) {
	var req model.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	sel := model.Selection{Site: model.ParseSiteSelection(req.Site), Range: h.Dataset.PayloadBounds()}
	if req.Low != nil {
		sel.Range.Low = *req.Low
	}
	if req.High != nil {
		sel.Range.High = *req.High
	}

	result, err := h.Exports.Export(h.Dataset, sel.Site, sel.Range, req.Format)
	if errors.Is(err, export.ErrUnsupportedFormat) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to export records", http.StatusInternalServerError)
		return
	}

	if err := h.Store.SaveExport(result); err != nil {
		log.Printf("❌ Failed to journal export %s: %v", result.ID, err)
	}
	log.Printf("💾 Export %s: %d records as %s", result.ID, result.RecordCount, result.Format)

	writeJSON(w, http.StatusCreated, result)
}

// ListExports returns the journaled exports
// @Summary List exports
// @Description Get the most recent export files, newest first
// @Tags exports
// @Produce json
// @Param limit query int false "Maximum number of exports" default(50)
// @Success 200 {array} model.ExportResult
// @Failure 500 {string} string "Internal server error"
// @Router /exports [get]
func (h *Handler) ListExports(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r.URL.Query().Get("limit"), defaultListLimit)

	exports, err := h.Store.ListExports(limit)
	if err != nil {
		log.Printf("❌ Failed to list exports: %v", err)
		http.Error(w, "Failed to fetch exports", http.StatusInternalServerError)
		return
	}
	for i := range exports {
		exports[i].DownloadURL = h.Exports.Outputs.GetDownloadURL(exports[i].ID, exports[i].FileName)
	}

	writeJSON(w, http.StatusOK, exports)
}

// Download serves an export file
// @Summary Download an export
// @Description Download a file written by POST /exports
// @Tags exports
// @Produce octet-stream
// @Param id path string true "Export ID"
// @Param file path string true "File name"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid export ID"
// @Failure 404 {string} string "File not found"
// @Router /download/{id}/{file} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	params := router.PathParams(r.URL.Path, DownloadPattern)
	if len(params) != 2 || params[0] == "" || params[1] == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	exportID, fileName := params[0], params[1]

	if _, err := uuid.Parse(exportID); err != nil {
		http.Error(w, "Invalid export ID", http.StatusBadRequest)
		return
	}

	if h.Exports.Outputs.GetFileType(fileName) == "unknown" {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	filePath := h.Exports.Outputs.ResolveFilePath(exportID, fileName)
	file, err := os.Open(filePath)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mtype.String())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Name()))
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}

// QueryHistory is the response of GET /queries
type QueryHistory struct {
	Enabled bool               `json:"enabled"`
	Counts  map[string]int     `json:"counts"`
	Queries []model.ChartQuery `json:"queries"`
}

// ListQueries returns the chart query journal
// @Summary Chart query journal
// @Description Get the most recent chart computations and per-chart totals
// @Tags journal
// @Produce json
// @Param limit query int false "Maximum number of queries" default(50)
// @Success 200 {object} QueryHistory
// @Failure 500 {string} string "Internal server error"
// @Router /queries [get]
func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r.URL.Query().Get("limit"), defaultListLimit)

	queries, err := h.Store.ListQueries(limit)
	if err != nil {
		log.Printf("❌ Failed to list chart queries: %v", err)
		http.Error(w, "Failed to fetch queries", http.StatusInternalServerError)
		return
	}
	counts, err := h.Store.CountQueries()
	if err != nil {
		log.Printf("❌ Failed to count chart queries: %v", err)
		http.Error(w, "Failed to fetch queries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, QueryHistory{
		Enabled: h.Store.Enabled(),
		Counts:  counts,
		Queries: queries,
	})
}
