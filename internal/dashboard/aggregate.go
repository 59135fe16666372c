package dashboard

import (
	"fmt"
	"spacex-dashboard/internal/model"
)

// Slice labels for a single-site pie
const (
	LabelSuccess = "Success"
	LabelFailure = "Failure"
)

// Axis labels for the scatter chart
const (
	ScatterXLabel = model.ColumnPayloadMass
	ScatterYLabel = model.ColumnClass
)

// groupCount accumulates one labelled count while preserving first-seen order
type groupCount struct {
	order  []string
	counts map[string]int
}

func newGroupCount() *groupCount {
	return &groupCount{counts: make(map[string]int)}
}

func (g *groupCount) add(key string, n int) {
	if _, exists := g.counts[key]; !exists {
		g.order = append(g.order, key)
	}
	g.counts[key] += n
}

func (g *groupCount) slices() []model.PieSlice {
	out := make([]model.PieSlice, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, model.PieSlice{Label: key, Value: g.counts[key]})
	}
	return out
}

// SiteSuccess builds the success pie for a site selection.
//
// For all sites there is one slice per site holding its number of
// successful launches. For a single site there are two slices, Success and
// Failure, summing to the site's record count. A site with no records
// yields no slices.
func SiteSuccess(ds *model.Dataset, sel model.SiteSelection) model.PieChartSpec {
	spec := model.PieChartSpec{
		Kind:      model.ChartKindPie,
		Selection: sel,
		Slices:    []model.PieSlice{},
	}

	if sel.IsAll() {
		spec.Title = "Total Success Launches by Site"
		groups := newGroupCount()
		for _, rec := range ds.Records {
			if rec.Succeeded() {
				groups.add(rec.LaunchSite, 1)
			} else {
				groups.add(rec.LaunchSite, 0)
			}
		}
		spec.Slices = groups.slices()
		return spec
	}

	spec.Title = fmt.Sprintf("Success vs Failure for %s", sel.Name())
	success, failure := 0, 0
	for _, rec := range FilterBySite(ds.Records, sel) {
		if rec.Succeeded() {
			success++
		} else {
			failure++
		}
	}
	if success+failure == 0 {
		return spec
	}
	spec.Slices = []model.PieSlice{
		{Label: LabelSuccess, Value: success},
		{Label: LabelFailure, Value: failure},
	}
	return spec
}

// PayloadScatter builds the payload/outcome scatter for a site selection and
// an inclusive payload range. Points are grouped by booster version.
func PayloadScatter(ds *model.Dataset, sel model.SiteSelection, rng model.PayloadRange) model.ScatterChartSpec {
	spec := model.ScatterChartSpec{
		Kind:      model.ChartKindScatter,
		Selection: sel,
		Range:     rng,
		XLabel:    ScatterXLabel,
		YLabel:    ScatterYLabel,
		Series:    []model.ScatterSeries{},
		Records:   Filter(ds.Records, sel, rng),
	}
	if sel.IsAll() {
		spec.Title = "Payload vs. Launch Success (All Sites)"
	} else {
		spec.Title = fmt.Sprintf("Payload vs. Launch Success for %s", sel.Name())
	}

	index := make(map[string]int)
	for _, rec := range spec.Records {
		i, exists := index[rec.BoosterVersion]
		if !exists {
			i = len(spec.Series)
			index[rec.BoosterVersion] = i
			spec.Series = append(spec.Series, model.ScatterSeries{Name: rec.BoosterVersion})
		}
		spec.Series[i].Points = append(spec.Series[i].Points, model.ScatterPoint{
			PayloadMassKg: rec.PayloadMassKg,
			Class:         rec.Class,
			LaunchSite:    rec.LaunchSite,
		})
	}
	return spec
}
