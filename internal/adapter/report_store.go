package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	m "github.com/mouse-blink/turtle/internal/model"
)

const reportFileMode = 0o600

// ReportStore persists and retrieves run reports as flat JSON files.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) (m.Path, error)
	LoadReports(dir m.Path) ([]m.RunReport, error)
}

type reportStore struct {
	fs FSAdapter
}

// NewReportStore constructs a ReportStore backed by fs.
func NewReportStore(fs FSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

// SaveReport writes report into dir, assigning an ID when it has none.
func (rs *reportStore) SaveReport(dir m.Path, report m.RunReport) (m.Path, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	if err := rs.fs.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("failed to create reports dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report %s: %w", report.ID, err)
	}

	name := fmt.Sprintf("%s-%s.json", report.StartedAt.UTC().Format("20060102T150405"), report.ID)
	path := rs.fs.JoinPath(string(dir), name)

	if err := rs.fs.WriteFile(path, data, reportFileMode); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return path, nil
}

// LoadReports reads every report in dir, newest first. A missing directory
// yields no reports.
func (rs *reportStore) LoadReports(dir m.Path) ([]m.RunReport, error) {
	if _, err := rs.fs.FileInfo(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []m.RunReport{}, nil
		}

		return nil, fmt.Errorf("reports dir error: %w", err)
	}

	paths, err := rs.fs.Glob(dir, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list reports in %s: %w", dir, err)
	}

	reports := make([]m.RunReport, 0, len(paths))

	for _, path := range paths {
		data, err := rs.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", path, err)
		}

		var report m.RunReport
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].StartedAt.After(reports[j].StartedAt)
	})

	return reports, nil
}
