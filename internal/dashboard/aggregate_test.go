package dashboard

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"spacex-dashboard/internal/model"
)

func sampleDataset() *model.Dataset {
	return model.NewDataset([]model.LaunchRecord{
		{LaunchSite: "site A", PayloadMassKg: 2000, Class: 1, BoosterVersion: "v1.0"},
		{LaunchSite: "site A", PayloadMassKg: 6000, Class: 0, BoosterVersion: "FT"},
		{LaunchSite: "site B", PayloadMassKg: 3000, Class: 1, BoosterVersion: "v1.0"},
	}, "sample")
}

func mixedDataset() *model.Dataset {
	return model.NewDataset([]model.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterVersion: "v1.0"},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 525, Class: 1, BoosterVersion: "v1.0"},
		{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 500, Class: 0, BoosterVersion: "v1.1"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterVersion: "FT"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 5300, Class: 0, BoosterVersion: "FT"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 5600, Class: 1, BoosterVersion: "FT"},
		{LaunchSite: "CCAFS SLC-40", PayloadMassKg: 3669, Class: 1, BoosterVersion: "B4"},
	}, "mixed")
}

func TestSiteSuccess(t *testing.T) {
	ds := mixedDataset()

	t.Run("all sites", func(t *testing.T) {
		spec := SiteSuccess(ds, model.AllSites())
		want := []model.PieSlice{
			{Label: "CCAFS LC-40", Value: 1},
			{Label: "VAFB SLC-4E", Value: 0},
			{Label: "KSC LC-39A", Value: 2},
			{Label: "CCAFS SLC-40", Value: 1},
		}
		if !reflect.DeepEqual(spec.Slices, want) {
			t.Errorf("wanted: %+v\ngot: %+v", want, spec.Slices)
		}
		if len(spec.Slices) != len(ds.Sites()) {
			t.Errorf("wanted: one slice per site (%d)\ngot: %d", len(ds.Sites()), len(spec.Slices))
		}
		if spec.Title != "Total Success Launches by Site" {
			t.Errorf("unexpected title %q", spec.Title)
		}
		if spec.Kind != model.ChartKindPie {
			t.Errorf("wanted: kind %q\ngot: %q", model.ChartKindPie, spec.Kind)
		}
	})

	t.Run("single site", func(t *testing.T) {
		spec := SiteSuccess(ds, model.Site("KSC LC-39A"))
		want := []model.PieSlice{
			{Label: LabelSuccess, Value: 2},
			{Label: LabelFailure, Value: 1},
		}
		if !reflect.DeepEqual(spec.Slices, want) {
			t.Errorf("wanted: %+v\ngot: %+v", want, spec.Slices)
		}
		if spec.Total() != 3 {
			t.Errorf("wanted: slices summing to site total 3\ngot: %d", spec.Total())
		}
		if spec.Title != "Success vs Failure for KSC LC-39A" {
			t.Errorf("unexpected title %q", spec.Title)
		}
	})

	t.Run("every site sums to its record count", func(t *testing.T) {
		counts := ds.Summary().SiteCounts
		for _, site := range ds.Sites() {
			spec := SiteSuccess(ds, model.Site(site))
			if len(spec.Slices) != 2 {
				t.Fatalf("%s: wanted: 2 slices\ngot: %d", site, len(spec.Slices))
			}
			if spec.Total() != counts[site] {
				t.Errorf("%s: wanted: %d\ngot: %d", site, counts[site], spec.Total())
			}
		}
	})

	t.Run("unknown site is empty", func(t *testing.T) {
		spec := SiteSuccess(ds, model.Site("Boca Chica"))
		if len(spec.Slices) != 0 {
			t.Errorf("wanted: no slices\ngot: %+v", spec.Slices)
		}
	})

	t.Run("literal ALL is a site name", func(t *testing.T) {
		spec := SiteSuccess(ds, model.ParseSiteSelection("ALL"))
		if spec.Selection.IsAll() || len(spec.Slices) != 0 {
			t.Errorf("wanted: empty single-site result\ngot: %+v", spec)
		}
	})
}

func TestPayloadScatter(t *testing.T) {
	ds := sampleDataset()

	t.Run("site A full range", func(t *testing.T) {
		spec := PayloadScatter(ds, model.Site("site A"), model.PayloadRange{Low: 0, High: 10000})
		want := []model.LaunchRecord{ds.Records[0], ds.Records[1]}
		if !reflect.DeepEqual(spec.Records, want) {
			t.Errorf("wanted: %+v\ngot: %+v", want, spec.Records)
		}
		if spec.Title != "Payload vs. Launch Success for site A" {
			t.Errorf("unexpected title %q", spec.Title)
		}
	})

	t.Run("all sites from 2500", func(t *testing.T) {
		spec := PayloadScatter(ds, model.AllSites(), model.PayloadRange{Low: 2500, High: 10000})
		want := []model.LaunchRecord{ds.Records[1], ds.Records[2]}
		if !reflect.DeepEqual(spec.Records, want) {
			t.Errorf("wanted: %+v\ngot: %+v", want, spec.Records)
		}
		if spec.Title != "Payload vs. Launch Success (All Sites)" {
			t.Errorf("unexpected title %q", spec.Title)
		}
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		spec := PayloadScatter(ds, model.AllSites(), model.PayloadRange{Low: 2000, High: 3000})
		if spec.PointCount() != 2 {
			t.Errorf("wanted: 2 points\ngot: %d", spec.PointCount())
		}
		spec = PayloadScatter(ds, model.AllSites(), model.PayloadRange{Low: 6000, High: 6000})
		if spec.PointCount() != 1 || spec.Records[0].PayloadMassKg != 6000 {
			t.Errorf("wanted: only the 6000 kg record\ngot: %+v", spec.Records)
		}
	})

	t.Run("series grouped by booster version", func(t *testing.T) {
		spec := PayloadScatter(ds, model.AllSites(), ds.PayloadBounds())
		if len(spec.Series) != 2 {
			t.Fatalf("wanted: 2 series\ngot: %d", len(spec.Series))
		}
		if spec.Series[0].Name != "v1.0" || len(spec.Series[0].Points) != 2 {
			t.Errorf("unexpected first series: %+v", spec.Series[0])
		}
		if spec.Series[1].Name != "FT" || len(spec.Series[1].Points) != 1 {
			t.Errorf("unexpected second series: %+v", spec.Series[1])
		}
		if spec.XLabel != "Payload Mass (kg)" || spec.YLabel != "class" {
			t.Errorf("unexpected axes %q / %q", spec.XLabel, spec.YLabel)
		}
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		spec := PayloadScatter(ds, model.AllSites(), model.PayloadRange{Low: 5000, High: 1000})
		if len(spec.Records) != 0 || len(spec.Series) != 0 {
			t.Errorf("wanted: empty result\ngot: %+v", spec)
		}
	})

	t.Run("unknown site is empty", func(t *testing.T) {
		spec := PayloadScatter(ds, model.Site("site Z"), ds.PayloadBounds())
		if spec.Records == nil || len(spec.Records) != 0 {
			t.Errorf("wanted: empty non-nil records\ngot: %#v", spec.Records)
		}
	})
}

func TestFilterMatchesPredicate(t *testing.T) {
	ds := mixedDataset()
	ranges := []model.PayloadRange{
		{Low: 0, High: 10000},
		{Low: 500, High: 525},
		{Low: 2490, High: 5300},
		{Low: 9000, High: 9999},
	}
	selections := []model.SiteSelection{model.AllSites(), model.Site("KSC LC-39A"), model.Site("CCAFS LC-40")}

	for _, sel := range selections {
		for _, rng := range ranges {
			got := Filter(ds.Records, sel, rng)
			var want []model.LaunchRecord
			for _, rec := range ds.Records {
				if rng.Low <= rec.PayloadMassKg && rec.PayloadMassKg <= rng.High &&
					(sel.IsAll() || rec.LaunchSite == sel.Name()) {
					want = append(want, rec)
				}
			}
			if len(got) != len(want) {
				t.Errorf("%s %+v: wanted: %d records\ngot: %d", sel, rng, len(want), len(got))
				continue
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("%s %+v: record %d mismatch: %+v vs %+v", sel, rng, i, got[i], want[i])
				}
			}
		}
	}
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	ds := mixedDataset()
	rng := model.PayloadRange{Low: 0, High: 6000}

	for _, sel := range []model.SiteSelection{model.AllSites(), model.Site("KSC LC-39A")} {
		pie1, _ := json.Marshal(SiteSuccess(ds, sel))
		pie2, _ := json.Marshal(SiteSuccess(ds, sel))
		if !bytes.Equal(pie1, pie2) {
			t.Errorf("%s: pie output differs between calls", sel)
		}
		sc1, _ := json.Marshal(PayloadScatter(ds, sel, rng))
		sc2, _ := json.Marshal(PayloadScatter(ds, sel, rng))
		if !bytes.Equal(sc1, sc2) {
			t.Errorf("%s: scatter output differs between calls", sel)
		}
	}
}
