package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/pkg/utils"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for export formats other than csv, json and yaml
var ErrUnsupportedFormat = errors.New("unsupported export format")

// baseFileName is the name of every export file, before its extension
const baseFileName = "launches"

// Manager writes filtered launch records to export files
type Manager struct {
	Outputs *utils.OutputManager
}

// NewManager creates an export manager writing under dir
func NewManager(dir string) *Manager {
	return &Manager{Outputs: utils.NewOutputManager(dir)}
}

// NormalizeFormat validates a format name, defaulting to csv
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", model.FormatCSV:
		return model.FormatCSV, nil
	case model.FormatJSON:
		return model.FormatJSON, nil
	case model.FormatYAML, "yml":
		return model.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Export writes the records matching sel and rng to a new export file
func (m *Manager) Export(ds *model.Dataset, sel model.SiteSelection, rng model.PayloadRange, format string) (model.ExportResult, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return model.ExportResult{}, err
	}

	return m.export(uuid.New().String(), ds, sel, rng, format)
}

// export writes the file under <output dir>/<id>/. The id directory is
// removed again when the file cannot be written.
func (m *Manager) export(id string, ds *model.Dataset, sel model.SiteSelection, rng model.PayloadRange, format string) (model.ExportResult, error) {
	records := dashboard.Filter(ds.Records, sel, rng)
	fileName := baseFileName + "." + format

	filePath, err := m.Outputs.GetOutputFilePath(id, fileName)
	if err != nil {
		return model.ExportResult{}, err
	}

	switch format {
	case model.FormatJSON:
		err = exportToJSON(filePath, records)
	case model.FormatYAML:
		err = exportToYAML(filePath, records)
	default:
		err = exportToCSV(filePath, records)
	}
	if err != nil {
		fmt.Printf("❌ Export to file failed: %v\n", err)
		m.discard(filePath)
		return model.ExportResult{}, err
	}

	size, err := m.Outputs.GetFileSize(filePath)
	if err != nil {
		m.discard(filePath)
		return model.ExportResult{}, fmt.Errorf("failed to stat export file: %w", err)
	}

	result := model.ExportResult{
		ID:          id,
		Format:      format,
		Site:        sel.WireValue(),
		PayloadLow:  rng.Low,
		PayloadHigh: rng.High,
		FileName:    fileName,
		FilePath:    filePath,
		RecordCount: len(records),
		SizeBytes:   size,
		DownloadURL: m.Outputs.GetDownloadURL(id, fileName),
		CreatedAt:   time.Now().UTC(),
	}
	fmt.Printf("✅ Export to file successful: %d records exported to %s\n", result.RecordCount, filePath)
	return result, nil
}

func (m *Manager) discard(filePath string) {
	if err := os.RemoveAll(filepath.Dir(filePath)); err != nil {
		fmt.Printf("⚠️ Failed to remove partial export %s: %v\n", filePath, err)
	}
}

// exportToCSV writes records with the dataset's own column names
func exportToCSV(path string, records []model.LaunchRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		model.ColumnFlightNumber,
		model.ColumnLaunchSite,
		model.ColumnClass,
		model.ColumnPayloadMass,
		model.ColumnBoosterVersion,
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.FlightNumber),
			rec.LaunchSite,
			strconv.Itoa(rec.Class),
			strconv.FormatFloat(rec.PayloadMassKg, 'f', -1, 64),
			rec.BoosterVersion,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

func exportToJSON(path string, records []model.LaunchRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func exportToYAML(path string, records []model.LaunchRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create YAML file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}
