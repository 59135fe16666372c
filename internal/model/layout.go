package model

// Option is one dropdown entry
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown is the launch site selector
type Dropdown struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
}

// Mark is a labelled tick on the range slider
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider is the payload range selector
type RangeSlider struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Marks []Mark     `json:"marks"`
	Value [2]float64 `json:"value"`
}

// ChartRegion is a placeholder the page fills with a rendered chart
type ChartRegion struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Endpoint string `json:"endpoint"`
}

// Layout declares the static widgets of the dashboard page
type Layout struct {
	Title    string        `json:"title"`
	Dropdown Dropdown      `json:"dropdown"`
	Slider   RangeSlider   `json:"slider"`
	Charts   []ChartRegion `json:"charts"`
}
