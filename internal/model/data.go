package model

import "time"

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportRequest is the body of POST /api/v1/exports
type ExportRequest struct {
	Site   string   `json:"site"`           // empty means all sites
	Low    *float64 `json:"low,omitempty"`  // defaults to dataset minimum
	High   *float64 `json:"high,omitempty"` // defaults to dataset maximum
	Format string   `json:"format"`         // csv, json or yaml
}

// ExportResult represents the result of an export operation
type ExportResult struct {
	ID          string    `json:"id" db:"id"`
	Format      string    `json:"format" db:"format"`
	Site        string    `json:"site" db:"site"`
	PayloadLow  float64   `json:"payload_low" db:"payload_low"`
	PayloadHigh float64   `json:"payload_high" db:"payload_high"`
	FileName    string    `json:"file_name" db:"file_name"`
	FilePath    string    `json:"-" db:"file_path"`
	RecordCount int       `json:"record_count" db:"record_count"`
	SizeBytes   int64     `json:"size_bytes" db:"size_bytes"`
	DownloadURL string    `json:"download_url" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ChartQuery is one journal entry for a chart computation
type ChartQuery struct {
	ID          string    `json:"id" db:"id"`
	Chart       string    `json:"chart" db:"chart"`
	Site        string    `json:"site" db:"site"`
	AllSites    bool      `json:"all_sites" db:"all_sites"`
	PayloadLow  *float64  `json:"payload_low,omitempty" db:"payload_low"`
	PayloadHigh *float64  `json:"payload_high,omitempty" db:"payload_high"`
	ResultCount int       `json:"result_count" db:"result_count"`
	Channel     string    `json:"channel" db:"channel"` // http or live
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
