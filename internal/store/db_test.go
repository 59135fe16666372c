package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"spacex-dashboard/internal/model"

	"github.com/google/uuid"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestChartQueries(t *testing.T) {
	repo := setupTestRepo(t)
	base := time.Now().UTC()

	queries := []model.ChartQuery{
		{ID: uuid.NewString(), Chart: model.ChartKindPie, AllSites: true, ResultCount: 4, Channel: "http", CreatedAt: base},
		{ID: uuid.NewString(), Chart: model.ChartKindScatter, Site: "KSC LC-39A", PayloadLow: floatPtr(0), PayloadHigh: floatPtr(5000), ResultCount: 7, Channel: "live", CreatedAt: base.Add(time.Second)},
		{ID: uuid.NewString(), Chart: model.ChartKindScatter, AllSites: true, PayloadLow: floatPtr(2500), PayloadHigh: floatPtr(9600), ResultCount: 12, Channel: "http", CreatedAt: base.Add(2 * time.Second)},
	}
	for _, q := range queries {
		if err := repo.SaveQuery(q); err != nil {
			t.Fatalf("SaveQuery() failed: %v", err)
		}
	}

	t.Run("newest first with limit", func(t *testing.T) {
		got, err := repo.ListQueries(2)
		if err != nil {
			t.Fatalf("ListQueries() failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("wanted: 2\ngot: %d", len(got))
		}
		if got[0].ID != queries[2].ID || got[1].ID != queries[1].ID {
			t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
		}
		if got[1].Site != "KSC LC-39A" || got[1].AllSites || got[1].PayloadHigh == nil || *got[1].PayloadHigh != 5000 {
			t.Errorf("unexpected row: %+v", got[1])
		}
	})

	t.Run("nullable range", func(t *testing.T) {
		got, err := repo.ListQueries(10)
		if err != nil {
			t.Fatalf("ListQueries() failed: %v", err)
		}
		pie := got[len(got)-1]
		if pie.PayloadLow != nil || pie.PayloadHigh != nil || !pie.AllSites {
			t.Errorf("wanted: pie query without range\ngot: %+v", pie)
		}
	})

	t.Run("counts per chart", func(t *testing.T) {
		counts, err := repo.CountQueries()
		if err != nil {
			t.Fatalf("CountQueries() failed: %v", err)
		}
		if counts[model.ChartKindPie] != 1 || counts[model.ChartKindScatter] != 2 {
			t.Errorf("unexpected counts: %v", counts)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		if err := repo.SaveQuery(queries[0]); err == nil {
			t.Error("wanted: error inserting duplicate id\ngot: nil")
		}
	})
}

func TestExports(t *testing.T) {
	repo := setupTestRepo(t)

	e := model.ExportResult{
		ID:          uuid.NewString(),
		Format:      model.FormatCSV,
		Site:        "VAFB SLC-4E",
		PayloadLow:  0,
		PayloadHigh: 9600,
		FileName:    "launches.csv",
		FilePath:    "outputs/x/launches.csv",
		RecordCount: 10,
		SizeBytes:   420,
		CreatedAt:   time.Now().UTC(),
	}
	if err := repo.SaveExport(e); err != nil {
		t.Fatalf("SaveExport() failed: %v", err)
	}

	got, err := repo.GetExport(e.ID)
	if err != nil {
		t.Fatalf("GetExport() failed: %v", err)
	}
	if got.FileName != e.FileName || got.RecordCount != 10 || got.SizeBytes != 420 || got.FilePath != e.FilePath {
		t.Errorf("wanted: %+v\ngot: %+v", e, got)
	}

	if _, err := repo.GetExport(uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("wanted: %v\ngot: %v", ErrNotFound, err)
	}

	list, err := repo.ListExports(10)
	if err != nil {
		t.Fatalf("ListExports() failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != e.ID {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestDisabledRepository(t *testing.T) {
	var repo *Repository

	if repo.Enabled() {
		t.Fatal("wanted: nil repository to be disabled")
	}
	if err := repo.SaveQuery(model.ChartQuery{ID: "x"}); err != nil {
		t.Errorf("wanted: nil\ngot: %v", err)
	}
	queries, err := repo.ListQueries(10)
	if err != nil || len(queries) != 0 {
		t.Errorf("wanted: empty list\ngot: %v (%v)", queries, err)
	}
	if _, err := repo.GetExport("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("wanted: %v\ngot: %v", ErrNotFound, err)
	}
	if err := repo.Close(); err != nil {
		t.Errorf("wanted: nil\ngot: %v", err)
	}
}
