package jira

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rmf-docgen/internal/model"
)

// Epic is one Jira bulk-import epic row; one epic tracks the full RMF
// lifecycle of a single control.
type Epic struct {
	Summary     string
	Description string
	Priority    string
	EpicName    string
	Labels      string
	Components  string
}

// Story is one Jira bulk-import story row, linked to its control's epic
// by the Epic Link field.
type Story struct {
	Summary     string
	Description string
	Priority    string
	Points      int
	EpicLink    string
	Labels      string
	Components  string
}

var epicHeader = []string{"Issue Type", "Summary", "Description", "Priority", "Epic Name", "Labels", "Component/s"}
var storyHeader = []string{"Issue Type", "Summary", "Description", "Priority", "Story Points", "Epic Link", "Labels", "Component/s"}

// Epics builds one epic per control.
func Epics(controls []model.Control) []Epic {
	out := make([]Epic, 0, len(controls))
	for _, c := range controls {
		familyName := model.FamilyName(c.Family)
		out = append(out, Epic{
			Summary:     fmt.Sprintf("[%s] %s", c.ControlID, familyName),
			Description: epicDescription(c, familyName),
			Priority:    PriorityForFamily(c.Family),
			EpicName:    c.ControlID,
			Labels:      fmt.Sprintf("RMF,NIST-800-53,%s,%s", c.Family, labelID(c.ControlID)),
			Components:  familyName,
		})
	}
	return out
}

// Stories builds the Implement, Assess, and Verify stories for each
// control, in that order.
func Stories(controls []model.Control) []Story {
	out := make([]Story, 0, 3*len(controls))
	for _, c := range controls {
		familyName := model.FamilyName(c.Family)
		priority := PriorityForFamily(c.Family)
		for _, task := range storyTasks {
			out = append(out, Story{
				Summary:     fmt.Sprintf("[%s] %s", c.ControlID, task.summary),
				Description: task.description(c.ControlID),
				Priority:    priority,
				Points:      task.points,
				EpicLink:    c.ControlID,
				Labels:      fmt.Sprintf("RMF,%s,%s", task.label, labelID(c.ControlID)),
				Components:  familyName,
			})
		}
	}
	return out
}

// WriteEpics writes the epic import CSV. Import this file before the
// stories so Epic Links resolve.
func WriteEpics(path string, controls []model.Control) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("jira: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(epicHeader); err != nil {
		return fmt.Errorf("jira: write epic header: %w", err)
	}
	for _, e := range Epics(controls) {
		row := []string{IssueTypeEpic, e.Summary, e.Description, e.Priority, e.EpicName, e.Labels, e.Components}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("jira: write epic %s: %w", e.EpicName, err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteStories writes the story import CSV.
func WriteStories(path string, controls []model.Control) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("jira: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(storyHeader); err != nil {
		return fmt.Errorf("jira: write story header: %w", err)
	}
	for _, s := range Stories(controls) {
		row := []string{IssueTypeStory, s.Summary, s.Description, s.Priority, strconv.Itoa(s.Points), s.EpicLink, s.Labels, s.Components}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("jira: write story %s: %w", s.Summary, err)
		}
	}
	w.Flush()
	return w.Error()
}

func labelID(controlID string) string {
	return strings.ReplaceAll(controlID, "-", "_")
}

func epicDescription(c model.Control, familyName string) string {
	sample := c.SampleText
	if sample == "" {
		sample = "No description available"
	}
	return fmt.Sprintf(`# NIST 800-53 Rev 4 Control: %s

**Control Family:** %s

**RMF Steps:**
1. PREPARE - Control identified and selected
2. IMPLEMENT - Deploy control requirements
3. ASSESS - Test control effectiveness
4. AUTHORIZE - Document and approve
5. MONITOR - Continuous assessment

**CCIs Mapped:** %d

**Sample Text:** %s

---
*This Epic tracks the complete RMF lifecycle for control %s.*
*Create child Stories for Implementation, Assessment, and Verification tasks.*
`, c.ControlID, familyName, c.CCICount, sample, c.ControlID)
}

var storyTasks = []struct {
	summary     string
	label       string
	points      int
	description func(controlID string) string
}{
	{
		summary: "Implement Control Requirements",
		label:   "Step3-Implement",
		points:  pointsImplement,
		description: func(id string) string {
			return fmt.Sprintf(`# Implementation Task for %s

**Objective:** Implement all technical and procedural requirements for %s.

## Tasks:
- Review control requirements from NIST 800-53 Rev 4
- Identify technical implementation approach
- Deploy necessary security controls
- Configure systems per control specifications
- Document implementation details
- Update System Security Plan (SSP)

## Acceptance Criteria:
- All control requirements are deployed
- Configuration is documented
- Implementation evidence is collected
- SSP is updated with implementation details

## RMF Step: 3 - IMPLEMENT
`, id, id)
		},
	},
	{
		summary: "Assess Control Effectiveness",
		label:   "Step4-Assess",
		points:  pointsAssess,
		description: func(id string) string {
			return fmt.Sprintf(`# Assessment Task for %s

**Objective:** Test and validate the effectiveness of control %s.

## Tasks:
- Develop test procedures
- Execute control testing
- Interview relevant personnel
- Review technical configurations
- Examine documentation
- Document assessment findings
- Identify any weaknesses or deficiencies

## Acceptance Criteria:
- All assessment procedures completed
- Findings documented in Security Assessment Report (SAR)
- Evidence collected and stored
- Any deficiencies are tracked

## RMF Step: 4 - ASSESS
`, id, id)
		},
	},
	{
		summary: "Verify and Document Control",
		label:   "Step5-Authorize",
		points:  pointsVerify,
		description: func(id string) string {
			return fmt.Sprintf(`# Verification Task for %s

**Objective:** Verify control implementation and complete authorization documentation.

## Tasks:
- Review assessment results
- Verify remediation of findings
- Compile evidence artifacts
- Update authorization package
- Obtain AO approval/acceptance
- Document in POA&M if needed

## Acceptance Criteria:
- Control is verified as effective
- All required evidence is documented
- AO has reviewed and accepted
- Authorization package is complete

## RMF Step: 5 - AUTHORIZE
`, id)
		},
	},
}
