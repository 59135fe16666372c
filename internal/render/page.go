package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"spacex-dashboard/internal/model"

	"github.com/yosssi/gohtml"
)

//go:embed templates/dashboard.html
var templates embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

// Endpoints the page script talks to
const (
	PieImagePath     = "/api/v1/charts/success-pie.svg"
	ScatterImagePath = "/api/v1/charts/payload-scatter.svg"
	LivePath         = "/api/v1/live"
)

type pageScript struct {
	Dropdown     string `json:"dropdown"`
	Slider       string `json:"slider"`
	Pie          string `json:"pie"`
	Scatter      string `json:"scatter"`
	PieImage     string `json:"pieImage"`
	ScatterImage string `json:"scatterImage"`
	Live         string `json:"live"`
}

type pageData struct {
	Layout       model.Layout
	Pie          model.ChartRegion
	Scatter      model.ChartRegion
	PieImage     string
	ScatterImage string
	Script       pageScript
}

// ImageURLs returns the rendered chart URLs for a selection
func ImageURLs(sel model.Selection) (pie, scatter string) {
	q := url.Values{}
	q.Set("site", sel.Site.WireValue())
	q.Set("low", fmt.Sprint(sel.Range.Low))
	q.Set("high", fmt.Sprint(sel.Range.High))
	return PieImagePath + "?" + q.Encode(), ScatterImagePath + "?" + q.Encode()
}

// Page renders the dashboard HTML for a layout
func Page(w io.Writer, layout model.Layout) error {
	if len(layout.Charts) < 2 {
		return fmt.Errorf("layout declares %d chart regions, want 2", len(layout.Charts))
	}

	initial := model.Selection{
		Site:  model.ParseSiteSelection(layout.Dropdown.Value),
		Range: model.PayloadRange{Low: layout.Slider.Value[0], High: layout.Slider.Value[1]},
	}
	pieURL, scatterURL := ImageURLs(initial)

	data := pageData{
		Layout:       layout,
		Pie:          layout.Charts[0],
		Scatter:      layout.Charts[1],
		PieImage:     pieURL,
		ScatterImage: scatterURL,
		Script: pageScript{
			Dropdown:     layout.Dropdown.ID,
			Slider:       layout.Slider.ID,
			Pie:          layout.Charts[0].ID,
			Scatter:      layout.Charts[1].ID,
			PieImage:     PieImagePath,
			ScatterImage: ScatterImagePath,
			Live:         LivePath,
		},
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing dashboard template: %w", err)
	}

	if _, err := w.Write(gohtml.FormatBytes(buf.Bytes())); err != nil {
		return fmt.Errorf("writing dashboard page: %w", err)
	}
	return nil
}
