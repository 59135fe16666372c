package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/model"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testDataset() *model.Dataset {
	return model.NewDataset([]model.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 525, Class: 1, BoosterVersion: "F9 v1.0  B0005"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterVersion: "F9 FT B1031.1"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 5300, Class: 0, BoosterVersion: "F9 FT B1034"},
		{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 9600, Class: 1, BoosterVersion: "F9 FT B1036.1"},
	}, "render")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"svg": FormatSVG, "PNG": FormatPNG} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%s: wanted: %s\ngot: %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("wanted: %v\ngot: %v", ErrUnknownFormat, err)
	}
	if FormatPNG.ContentType() != "image/png" || FormatSVG.ContentType() != "image/svg+xml" {
		t.Error("unexpected content types")
	}
}

func TestRenderPie(t *testing.T) {
	ds := testDataset()

	t.Run("svg all sites", func(t *testing.T) {
		var buf bytes.Buffer
		if err := RenderPie(&buf, dashboard.SiteSuccess(ds, model.AllSites()), FormatSVG); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "<svg") {
			t.Fatalf("wanted: svg document\ngot: %.80s", out)
		}
		if !strings.Contains(out, "KSC LC-39A (1)") {
			t.Errorf("wanted: slice label for KSC LC-39A")
		}
	})

	t.Run("png single site", func(t *testing.T) {
		var buf bytes.Buffer
		if err := RenderPie(&buf, dashboard.SiteSuccess(ds, model.Site("KSC LC-39A")), FormatPNG); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Error("wanted: png output")
		}
	})

	t.Run("empty selection renders placeholder", func(t *testing.T) {
		var buf bytes.Buffer
		spec := dashboard.SiteSuccess(ds, model.Site("Boca Chica"))
		if err := RenderPie(&buf, spec, FormatSVG); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !strings.Contains(buf.String(), "No launches match this selection") {
			t.Errorf("wanted: placeholder text\ngot: %s", buf.String())
		}
	})
}

func TestRenderScatter(t *testing.T) {
	ds := testDataset()

	t.Run("svg full range", func(t *testing.T) {
		var buf bytes.Buffer
		spec := dashboard.PayloadScatter(ds, model.AllSites(), ds.PayloadBounds())
		if err := RenderScatter(&buf, spec, FormatSVG); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !strings.Contains(buf.String(), "<svg") {
			t.Error("wanted: svg document")
		}
	})

	t.Run("single point zero width range", func(t *testing.T) {
		var buf bytes.Buffer
		spec := dashboard.PayloadScatter(ds, model.AllSites(), model.PayloadRange{Low: 9600, High: 9600})
		if spec.PointCount() != 1 {
			t.Fatalf("wanted: 1 point\ngot: %d", spec.PointCount())
		}
		if err := RenderScatter(&buf, spec, FormatPNG); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Error("wanted: png output")
		}
	})

	t.Run("empty png placeholder", func(t *testing.T) {
		var buf bytes.Buffer
		spec := dashboard.PayloadScatter(ds, model.AllSites(), model.PayloadRange{Low: 10, High: 1})
		if err := RenderScatter(&buf, spec, FormatPNG); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Error("wanted: png placeholder")
		}
	})
}

func TestXAxisBounds(t *testing.T) {
	spec := model.ScatterChartSpec{
		Range:   model.PayloadRange{Low: 3000, High: 3000},
		Records: []model.LaunchRecord{{PayloadMassKg: 3000}},
	}
	lo, hi := xAxisBounds(spec)
	if lo != 2500 || hi != 3500 {
		t.Errorf("wanted: [2500, 3500]\ngot: [%v, %v]", lo, hi)
	}
}
