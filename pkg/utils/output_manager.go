package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes export files under one directory per export ID
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateExportDir creates the directory holding one export's files
func (om *OutputManager) CreateExportDir(exportID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, filepath.Base(exportID))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	return dir, nil
}

// GetOutputFilePath generates a full path for an export file
func (om *OutputManager) GetOutputFilePath(exportID, fileName string) (string, error) {
	dir, err := om.CreateExportDir(exportID)
	if err != nil {
		return "", err
	}

	// Strip any path separators from the file name
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// ResolveFilePath locates an existing export file without creating directories
func (om *OutputManager) ResolveFilePath(exportID, fileName string) string {
	return filepath.Join(om.BaseOutputDir, filepath.Base(exportID), filepath.Base(fileName))
}

// GetDownloadURL generates a download URL for a file
func (om *OutputManager) GetDownloadURL(exportID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", exportID, filepath.Base(fileName))
}

// GetFileType determines the export format from a file extension
func (om *OutputManager) GetFileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "unknown"
	}
}

// GetFileSize returns the size of a file in bytes
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}

// EnsureOutputDirExists ensures the base output directory exists
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}
