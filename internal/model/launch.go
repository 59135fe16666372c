package model

import "time"

// Column names expected in the launch dataset CSV
const (
	ColumnPayloadMass    = "Payload Mass (kg)"
	ColumnLaunchSite     = "Launch Site"
	ColumnClass          = "class"
	ColumnBoosterVersion = "Booster Version"
	ColumnFlightNumber   = "Flight Number"
)

// Outcome classes
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// LaunchRecord represents a single historical launch attempt
type LaunchRecord struct {
	FlightNumber   int     `json:"flight_number,omitempty" yaml:"flight_number,omitempty"`
	LaunchSite     string  `json:"launch_site" yaml:"launch_site"`
	PayloadMassKg  float64 `json:"payload_mass_kg" yaml:"payload_mass_kg"`
	Class          int     `json:"class" yaml:"class"`
	BoosterVersion string  `json:"booster_version" yaml:"booster_version"`
}

// Succeeded reports whether the launch outcome class is success
func (r LaunchRecord) Succeeded() bool {
	return r.Class == ClassSuccess
}

// Dataset is the immutable launch table loaded at startup
type Dataset struct {
	Records    []LaunchRecord `json:"-"`
	MinPayload float64        `json:"min_payload"`
	MaxPayload float64        `json:"max_payload"`
	Source     string         `json:"source"`
	LoadedAt   time.Time      `json:"loaded_at"`
}

// NewDataset builds a dataset and computes the payload bounds.
// Callers must not pass an empty slice.
func NewDataset(records []LaunchRecord, source string) *Dataset {
	ds := &Dataset{
		Records:  records,
		Source:   source,
		LoadedAt: time.Now().UTC(),
	}
	for i, rec := range records {
		if i == 0 || rec.PayloadMassKg < ds.MinPayload {
			ds.MinPayload = rec.PayloadMassKg
		}
		if i == 0 || rec.PayloadMassKg > ds.MaxPayload {
			ds.MaxPayload = rec.PayloadMassKg
		}
	}
	return ds
}

// Len returns the number of launch records
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Sites returns the distinct launch sites in first appearance order
func (d *Dataset) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for _, rec := range d.Records {
		if !seen[rec.LaunchSite] {
			seen[rec.LaunchSite] = true
			sites = append(sites, rec.LaunchSite)
		}
	}
	return sites
}

// PayloadBounds returns the full payload range of the dataset
func (d *Dataset) PayloadBounds() PayloadRange {
	return PayloadRange{Low: d.MinPayload, High: d.MaxPayload}
}

// DatasetSummary is the API view of the loaded dataset
type DatasetSummary struct {
	Source      string         `json:"source"`
	RecordCount int            `json:"record_count"`
	Sites       []string       `json:"sites"`
	SiteCounts  map[string]int `json:"site_counts"`
	MinPayload  float64        `json:"min_payload"`
	MaxPayload  float64        `json:"max_payload"`
	LoadedAt    time.Time      `json:"loaded_at"`
}

// Summary describes the dataset without exposing its rows
func (d *Dataset) Summary() DatasetSummary {
	counts := make(map[string]int)
	for _, rec := range d.Records {
		counts[rec.LaunchSite]++
	}
	return DatasetSummary{
		Source:      d.Source,
		RecordCount: d.Len(),
		Sites:       d.Sites(),
		SiteCounts:  counts,
		MinPayload:  d.MinPayload,
		MaxPayload:  d.MaxPayload,
		LoadedAt:    d.LoadedAt,
	}
}
