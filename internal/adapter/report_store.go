package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

const reportVersion = 1

// ReportStore persists batch reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
}

type reportFile struct {
	Version   int        `yaml:"version"`
	Generated time.Time  `yaml:"generated"`
	Reports   []m.Report `yaml:"reports"`
}

// YAMLReportStore writes reports as a single YAML manifest.
type YAMLReportStore struct {
	now func() time.Time
}

// NewReportStore creates a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{now: time.Now}
}

// SaveReports writes reports to path, creating parent directories.
func (s *YAMLReportStore) SaveReports(path m.Path, reports []m.Report) error {
	data, err := yaml.Marshal(reportFile{
		Version:   reportVersion,
		Generated: s.now().UTC(),
		Reports:   reports,
	})
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	return nil
}

// LoadReports reads a manifest written by SaveReports.
func (s *YAMLReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}

	var file reportFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode reports %s: %w", path, err)
	}

	if file.Version != reportVersion {
		return nil, fmt.Errorf("unsupported report version %d", file.Version)
	}

	return file.Reports, nil
}
