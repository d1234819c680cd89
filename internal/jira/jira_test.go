package jira

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rmf-docgen/internal/model"
)

var testControls = []model.Control{
	{ControlID: "AC-2", Family: "AC", CCICount: 4, SampleText: "Account management."},
	{ControlID: "CP-9", Family: "CP", CCICount: 2, SampleText: "System backup."},
	{ControlID: "PE-3", Family: "PE", CCICount: 1, SampleText: "Physical access control."},
}

func TestPriorityForFamily(t *testing.T) {
	cases := []struct{ family, want string }{
		{"AC", PriorityHigh},
		{"AU", PriorityHigh},
		{"IA", PriorityHigh},
		{"SC", PriorityHigh},
		{"SI", PriorityHigh},
		{"CM", PriorityMedium},
		{"CP", PriorityMedium},
		{"PE", PriorityLow},
		{"OTHER", PriorityLow},
	}
	for _, c := range cases {
		if got := PriorityForFamily(c.family); got != c.want {
			t.Errorf("PriorityForFamily(%s) = %s, want %s", c.family, got, c.want)
		}
	}
}

func TestEpics(t *testing.T) {
	epics := Epics(testControls)
	if len(epics) != len(testControls) {
		t.Fatalf("got %d epics, want %d", len(epics), len(testControls))
	}

	e := epics[0]
	if e.Summary != "[AC-2] Access Control" {
		t.Errorf("summary = %q", e.Summary)
	}
	if e.EpicName != "AC-2" {
		t.Errorf("epic name = %q", e.EpicName)
	}
	if e.Priority != PriorityHigh {
		t.Errorf("priority = %q", e.Priority)
	}
	if !strings.Contains(e.Labels, "AC_2") {
		t.Errorf("labels %q missing sanitized control ID", e.Labels)
	}
	if !strings.Contains(e.Description, "Account management.") {
		t.Error("description missing sample text")
	}
	if !strings.Contains(e.Description, "**CCIs Mapped:** 4") {
		t.Error("description missing CCI count")
	}
}

func TestEpicDescriptionPlaceholder(t *testing.T) {
	epics := Epics([]model.Control{{ControlID: "MA-2", Family: "MA"}})
	if !strings.Contains(epics[0].Description, "No description available") {
		t.Error("empty sample text should render a placeholder")
	}
}

func TestStories(t *testing.T) {
	stories := Stories(testControls)
	if len(stories) != 3*len(testControls) {
		t.Fatalf("got %d stories, want %d", len(stories), 3*len(testControls))
	}

	// Implement, Assess, Verify in order with fixed points.
	wantPoints := []int{8, 5, 3}
	for i, s := range stories[:3] {
		if s.EpicLink != "AC-2" {
			t.Errorf("story %d epic link = %q, want AC-2", i, s.EpicLink)
		}
		if s.Points != wantPoints[i] {
			t.Errorf("story %d points = %d, want %d", i, s.Points, wantPoints[i])
		}
		if s.Priority != PriorityHigh {
			t.Errorf("story %d priority = %q", i, s.Priority)
		}
	}
	if !strings.Contains(stories[0].Summary, "Implement Control Requirements") {
		t.Errorf("first story summary = %q", stories[0].Summary)
	}
	if !strings.Contains(stories[2].Summary, "Verify and Document Control") {
		t.Errorf("third story summary = %q", stories[2].Summary)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestWriteEpicsAndStories(t *testing.T) {
	dir := t.TempDir()
	epicsPath := filepath.Join(dir, "jira_epics.csv")
	storiesPath := filepath.Join(dir, "jira_stories.csv")

	if err := WriteEpics(epicsPath, testControls); err != nil {
		t.Fatalf("WriteEpics: %v", err)
	}
	if err := WriteStories(storiesPath, testControls); err != nil {
		t.Fatalf("WriteStories: %v", err)
	}

	epicRows := readCSV(t, epicsPath)
	if len(epicRows) != 1+len(testControls) {
		t.Fatalf("epics file has %d rows, want %d", len(epicRows), 1+len(testControls))
	}
	if epicRows[0][0] != "Issue Type" || epicRows[1][0] != IssueTypeEpic {
		t.Errorf("unexpected epic rows: header %v, first %v", epicRows[0], epicRows[1])
	}

	storyRows := readCSV(t, storiesPath)
	if len(storyRows) != 1+3*len(testControls) {
		t.Fatalf("stories file has %d rows, want %d", len(storyRows), 1+3*len(testControls))
	}
	if storyRows[1][0] != IssueTypeStory {
		t.Errorf("first story row = %v", storyRows[1])
	}
}
