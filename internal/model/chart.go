package model

// Chart kinds
const (
	ChartKindPie     = "pie"
	ChartKindScatter = "scatter"
)

// PieSlice is one labelled wedge of a pie chart
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieChartSpec describes the success pie chart
type PieChartSpec struct {
	Kind      string        `json:"kind"`
	Title     string        `json:"title"`
	Selection SiteSelection `json:"selection"`
	Slices    []PieSlice    `json:"slices"`
}

// Total returns the sum of all slice values
func (p PieChartSpec) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// ScatterPoint is one launch plotted as payload against outcome
type ScatterPoint struct {
	PayloadMassKg float64 `json:"payload_mass_kg"`
	Class         int     `json:"class"`
	LaunchSite    string  `json:"launch_site"`
}

// ScatterSeries groups points sharing a booster version
type ScatterSeries struct {
	Name   string         `json:"name"`
	Points []ScatterPoint `json:"points"`
}

// ScatterChartSpec describes the payload/outcome scatter chart
type ScatterChartSpec struct {
	Kind      string          `json:"kind"`
	Title     string          `json:"title"`
	Selection SiteSelection   `json:"selection"`
	Range     PayloadRange    `json:"range"`
	XLabel    string          `json:"x_label"`
	YLabel    string          `json:"y_label"`
	Series    []ScatterSeries `json:"series"`
	Records   []LaunchRecord  `json:"records"`
}

// PointCount returns the number of plotted points
func (s ScatterChartSpec) PointCount() int {
	return len(s.Records)
}
