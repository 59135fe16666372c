package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/pkg/utils"
	"strings"
)

var (
	// ErrMissingColumn is returned when a required CSV column is absent
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyDataset is returned when the CSV holds a header but no rows
	ErrEmptyDataset = errors.New("dataset contains no launch records")
	// ErrInvalidRow is returned when a row fails validation
	ErrInvalidRow = errors.New("invalid launch record")
)

// ------------------- Loading -------------------

// Load reads the launch dataset from a file path or an http(s) URL.
func Load(ctx context.Context, source string) (*model.Dataset, error) {
	fmt.Printf("➡️ Loading launch dataset from: %s\n", source)

	reader, closeFn, err := open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	ds, err := Parse(reader, source)
	if err != nil {
		return nil, err
	}

	fmt.Printf("📄 Dataset loaded: %d records from %s (payload %.0f..%.0f kg)\n",
		ds.Len(), source, ds.MinPayload, ds.MaxPayload)
	return ds, nil
}

func open(ctx context.Context, source string) (io.Reader, func(), error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build dataset request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to GET dataset: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, nil, fmt.Errorf("failed to GET dataset: unexpected status %s", resp.Status)
		}
		return resp.Body, func() { resp.Body.Close() }, nil
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	return file, func() { file.Close() }, nil
}

// ------------------- CSV Parsing -------------------

// Parse reads launch records from CSV. Any malformed row aborts the load.
func Parse(r io.Reader, source string) (*model.Dataset, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[utils.CleanHeader(h)] = i
	}
	if err := validateHeader(columns); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var records []model.LaunchRecord
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		line, _ := csvReader.FieldPos(0)
		rec, err := validateRow(line, row, columns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyDataset)
	}
	return model.NewDataset(records, source), nil
}
