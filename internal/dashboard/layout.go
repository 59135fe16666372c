package dashboard

import (
	"math"
	"spacex-dashboard/internal/model"
	"strconv"
)

// Widget IDs shared by the page, the layout API and the live channel
const (
	SiteDropdownID   = "site-dropdown"
	PayloadSliderID  = "payload-slider"
	SuccessPieID     = "success-pie-chart"
	PayloadScatterID = "success-payload-scatter-chart"
)

// DashboardTitle is the page heading
const DashboardTitle = "SpaceX Launch Records Dashboard"

// LaunchSites are the fixed dropdown choices after All Sites
var LaunchSites = []string{
	"CCAFS LC-40",
	"VAFB SLC-4E",
	"KSC LC-39A",
	"CCAFS SLC-40",
}

// SliderOptions controls the payload slider construction
type SliderOptions struct {
	Step         float64
	MarkInterval float64
}

// DefaultSliderOptions matches a 1000 kg step with a mark every 5000 kg
func DefaultSliderOptions() SliderOptions {
	return SliderOptions{Step: 1000, MarkInterval: 5000}
}

// BuildLayout declares the dashboard widgets for a loaded dataset
func BuildLayout(ds *model.Dataset, opts SliderOptions) model.Layout {
	if opts.Step <= 0 {
		opts.Step = DefaultSliderOptions().Step
	}
	if opts.MarkInterval <= 0 {
		opts.MarkInterval = DefaultSliderOptions().MarkInterval
	}

	options := []model.Option{{Label: "All Sites", Value: model.AllSites().WireValue()}}
	for _, site := range LaunchSites {
		options = append(options, model.Option{Label: site, Value: site})
	}

	return model.Layout{
		Title: DashboardTitle,
		Dropdown: model.Dropdown{
			ID:          SiteDropdownID,
			Label:       "Select a Launch Site:",
			Placeholder: "Select a Launch Site here",
			Options:     options,
			Value:       model.AllSites().WireValue(),
		},
		Slider: model.RangeSlider{
			ID:    PayloadSliderID,
			Label: "Select Payload Range (kg):",
			Min:   ds.MinPayload,
			Max:   ds.MaxPayload,
			Step:  opts.Step,
			Marks: sliderMarks(ds.MaxPayload, opts.MarkInterval),
			Value: [2]float64{ds.MinPayload, ds.MaxPayload},
		},
		Charts: []model.ChartRegion{
			{ID: SuccessPieID, Kind: model.ChartKindPie, Endpoint: "/api/v1/charts/success-pie"},
			{ID: PayloadScatterID, Kind: model.ChartKindScatter, Endpoint: "/api/v1/charts/payload-scatter"},
		},
	}
}

// sliderMarks places a mark every interval from 0 up to the first multiple
// at or above max.
func sliderMarks(max, interval float64) []model.Mark {
	top := math.Ceil(max/interval) * interval
	var marks []model.Mark
	for v := 0.0; v <= top; v += interval {
		marks = append(marks, model.Mark{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return marks
}
