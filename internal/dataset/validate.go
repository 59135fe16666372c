package dataset

import (
	"fmt"
	"math"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/pkg/utils"
	"strings"
)

// UnknownBooster labels records whose booster version cell is blank
const UnknownBooster = "Unknown"

var requiredColumns = []string{
	model.ColumnPayloadMass,
	model.ColumnLaunchSite,
	model.ColumnClass,
	model.ColumnBoosterVersion,
}

// validateHeader checks that every required column is present.
func validateHeader(columns map[string]int) error {
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// validateRow converts one CSV row into a LaunchRecord.
func validateRow(line int, row []string, columns map[string]int) (model.LaunchRecord, error) {
	var rec model.LaunchRecord

	site := strings.TrimSpace(row[columns[model.ColumnLaunchSite]])
	if site == "" {
		return rec, rowError(line, model.ColumnLaunchSite, "launch site is empty")
	}
	rec.LaunchSite = site

	payload, ok := utils.Numeric(utils.ParseValue(row[columns[model.ColumnPayloadMass]]))
	if !ok {
		return rec, rowError(line, model.ColumnPayloadMass, fmt.Sprintf("must be numeric, got %q", row[columns[model.ColumnPayloadMass]]))
	}
	if math.IsNaN(payload) || math.IsInf(payload, 0) {
		return rec, rowError(line, model.ColumnPayloadMass, fmt.Sprintf("must be finite, got %q", row[columns[model.ColumnPayloadMass]]))
	}
	if payload < 0 {
		return rec, rowError(line, model.ColumnPayloadMass, fmt.Sprintf("below minimum: got %v, want ≥ 0", payload))
	}
	rec.PayloadMassKg = payload

	class, ok := utils.Numeric(utils.ParseValue(row[columns[model.ColumnClass]]))
	if !ok || (class != model.ClassFailure && class != model.ClassSuccess) {
		return rec, rowError(line, model.ColumnClass, fmt.Sprintf("must be 0 or 1, got %q", row[columns[model.ColumnClass]]))
	}
	rec.Class = int(class)

	rec.BoosterVersion = strings.TrimSpace(row[columns[model.ColumnBoosterVersion]])
	if rec.BoosterVersion == "" {
		rec.BoosterVersion = UnknownBooster
	}

	// Flight number is optional and only used for display order
	if idx, ok := columns[model.ColumnFlightNumber]; ok {
		if n, ok := utils.ParseValue(row[idx]).(int); ok {
			rec.FlightNumber = n
		}
	}

	return rec, nil
}

func rowError(line int, column, msg string) error {
	return fmt.Errorf("%w at line %d, column %q: %s", ErrInvalidRow, line, column, msg)
}
