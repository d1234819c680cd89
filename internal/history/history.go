package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"rmf-docgen/internal/model"
)

// Index is the persisted run log, newest entry last.
type Index struct {
	Entries []model.FetchRun `json:"entries"`
}

// Trend compares the current run's control count against the previous one.
type Trend struct {
	Previous int
	Current  int
	Delta    int
	Label    string // GREW / SHRANK / SAME / FIRST_RUN
}

const maxEntries = 200

// Record appends the run to <outDir>/history/index.json and returns the
// control-count trend. History failures never abort the pipeline; callers
// log and continue.
func Record(outDir string, run model.FetchRun) (Trend, error) {
	historyDir := filepath.Join(outDir, "history")
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return Trend{}, err
	}

	indexPath := filepath.Join(historyDir, "index.json")
	var idx Index
	if raw, err := os.ReadFile(indexPath); err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &idx)
	}

	prev := -1
	if len(idx.Entries) > 0 {
		prev = idx.Entries[len(idx.Entries)-1].ControlCount
	}

	idx.Entries = append(idx.Entries, run)
	if len(idx.Entries) > maxEntries {
		idx.Entries = idx.Entries[len(idx.Entries)-maxEntries:]
	}

	raw, _ := json.MarshalIndent(idx, "", "  ")
	if err := os.WriteFile(indexPath, raw, 0644); err != nil {
		return Trend{}, err
	}

	tr := Trend{Previous: prev, Current: run.ControlCount, Label: "FIRST_RUN"}
	if prev >= 0 {
		tr.Delta = tr.Current - tr.Previous
		switch {
		case tr.Delta > 0:
			tr.Label = "GREW"
		case tr.Delta < 0:
			tr.Label = "SHRANK"
		default:
			tr.Label = "SAME"
		}
	}
	return tr, nil
}
