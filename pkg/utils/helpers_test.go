package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFloatParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"", 42, false},
		{"  ", 42, false},
		{"2500", 2500, false},
		{"2500.5", 2500.5, false},
		{"-1", -1, false},
		{"1e3", 1000, false},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFloatParam(tt.raw, 42)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wanted error: %v\ngot: %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("wanted: %v\ngot: %v", tt.want, got)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	for raw, want := range map[string]int{"": 50, "10": 10, "0": 50, "-3": 50, "x": 50} {
		if got := ParseLimit(raw, 50); got != want {
			t.Errorf("%q: wanted: %d\ngot: %d", raw, want, got)
		}
	}
}

func TestParseValueAndNumeric(t *testing.T) {
	if v, ok := ParseValue(" 7 ").(int); !ok || v != 7 {
		t.Errorf("wanted: int 7\ngot: %#v", ParseValue(" 7 "))
	}
	if f, ok := Numeric(ParseValue("525.5")); !ok || f != 525.5 {
		t.Errorf("wanted: 525.5\ngot: %v", f)
	}
	if _, ok := Numeric(ParseValue("heavy")); ok {
		t.Error("wanted: non-numeric for text cell")
	}
}

func TestCleanHeader(t *testing.T) {
	tests := []struct{ raw, want string }{
		{"\ufeffLaunch Site", "Launch Site"},
		{` "Payload Mass (kg)" `, "Payload Mass (kg)"},
		{"class", "class"},
	}
	for _, tt := range tests {
		if got := CleanHeader(tt.raw); got != tt.want {
			t.Errorf("wanted: %q\ngot: %q", tt.want, got)
		}
	}
}

func TestOutputManager(t *testing.T) {
	om := NewOutputManager(filepath.Join(t.TempDir(), "outputs"))
	if err := om.EnsureOutputDirExists(); err != nil {
		t.Fatalf("EnsureOutputDirExists() failed: %v", err)
	}

	path, err := om.GetOutputFilePath("abc", "../launches.csv")
	if err != nil {
		t.Fatalf("GetOutputFilePath() failed: %v", err)
	}
	if want := filepath.Join(om.BaseOutputDir, "abc", "launches.csv"); path != want {
		t.Errorf("wanted: %s\ngot: %s", want, path)
	}
	if err := os.WriteFile(path, []byte("x,y\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if got := om.ResolveFilePath("abc", "launches.csv"); got != path {
		t.Errorf("wanted: %s\ngot: %s", path, got)
	}
	if size, err := om.GetFileSize(path); err != nil || size != 4 {
		t.Errorf("wanted: 4 bytes\ngot: %d (%v)", size, err)
	}
	if got := om.GetDownloadURL("abc", "launches.csv"); got != "/api/v1/download/abc/launches.csv" {
		t.Errorf("unexpected url %q", got)
	}
	for name, want := range map[string]string{"a.csv": "csv", "a.JSON": "json", "a.yml": "yaml", "a.exe": "unknown"} {
		if got := om.GetFileType(name); got != want {
			t.Errorf("%s: wanted: %s\ngot: %s", name, want, got)
		}
	}
}
