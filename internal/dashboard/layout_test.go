package dashboard

import (
	"testing"

	"spacex-dashboard/internal/model"
)

func TestBuildLayout(t *testing.T) {
	ds := model.NewDataset([]model.LaunchRecord{
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 0, Class: 1, BoosterVersion: "FT"},
		{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 9600, Class: 0, BoosterVersion: "FT"},
	}, "layout")

	layout := BuildLayout(ds, DefaultSliderOptions())

	if len(layout.Dropdown.Options) != 5 {
		t.Fatalf("wanted: 5 dropdown options\ngot: %d", len(layout.Dropdown.Options))
	}
	all := layout.Dropdown.Options[0]
	if all.Label != "All Sites" || !model.ParseSiteSelection(all.Value).IsAll() {
		t.Errorf("wanted: first option to select all sites\ngot: %+v", all)
	}
	if layout.Dropdown.Value != all.Value {
		t.Errorf("wanted: dropdown to default to all sites\ngot: %q", layout.Dropdown.Value)
	}
	for i, site := range LaunchSites {
		opt := layout.Dropdown.Options[i+1]
		if opt.Label != site || opt.Value != site {
			t.Errorf("option %d: wanted: %q\ngot: %+v", i+1, site, opt)
		}
	}

	s := layout.Slider
	if s.Min != 0 || s.Max != 9600 || s.Step != 1000 {
		t.Errorf("unexpected slider bounds: %+v", s)
	}
	if s.Value != [2]float64{0, 9600} {
		t.Errorf("wanted: initial value [0 9600]\ngot: %v", s.Value)
	}
	wantMarks := []float64{0, 5000, 10000}
	if len(s.Marks) != len(wantMarks) {
		t.Fatalf("wanted: %d marks\ngot: %+v", len(wantMarks), s.Marks)
	}
	for i, v := range wantMarks {
		if s.Marks[i].Value != v {
			t.Errorf("mark %d: wanted: %v\ngot: %v", i, v, s.Marks[i].Value)
		}
	}
	if s.Marks[1].Label != "5000" {
		t.Errorf("wanted: label 5000\ngot: %q", s.Marks[1].Label)
	}

	if len(layout.Charts) != 2 || layout.Charts[0].ID != SuccessPieID || layout.Charts[1].ID != PayloadScatterID {
		t.Errorf("unexpected chart regions: %+v", layout.Charts)
	}
}

func TestBuildLayoutFallsBackToDefaults(t *testing.T) {
	ds := model.NewDataset([]model.LaunchRecord{
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 100, Class: 1, BoosterVersion: "FT"},
	}, "defaults")

	layout := BuildLayout(ds, SliderOptions{})
	if layout.Slider.Step != 1000 {
		t.Errorf("wanted: step 1000\ngot: %v", layout.Slider.Step)
	}
	if len(layout.Slider.Marks) != 2 {
		t.Errorf("wanted: marks at 0 and 5000\ngot: %+v", layout.Slider.Marks)
	}
}
