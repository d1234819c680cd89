package flowchart

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"rmf-docgen/internal/model"
)

// RMF step colors for the dark theme. Node fills below must stay in sync
// with the legend.
const (
	colorPrepare      = "#1a1a2e"
	colorSelect       = "#16213e"
	colorImplement    = "#0f3460"
	colorAssess       = "#1a4d6d"
	colorAuthorize    = "#00d9ff"
	colorMonitor      = "#005f73"
	colorDecommission = "#2d4654"
)

var idSanitizer = strings.NewReplacer("-", "_", "(", "", ")", "", " ", "_")

// SanitizeID converts a control ID into a valid Mermaid node ID,
// e.g. "AC-2 (1)" becomes "AC_2_1".
func SanitizeID(controlID string) string {
	return idSanitizer.Replace(controlID)
}

// Build assembles the full Mermaid flowchart: theme header, the 7-step
// RMF main flow, per-control lifecycle nodes grouped by family, and the
// step legend.
func Build(controls []model.Control, generatedAt time.Time) string {
	var b strings.Builder
	writeHeader(&b, generatedAt)
	writeMainFlow(&b)
	writeControlNodes(&b, controls)
	writeLegend(&b)
	return b.String()
}

// Write renders the flowchart for controls and writes it to path.
func Write(path string, controls []model.Control) error {
	content := Build(controls, time.Now().UTC())
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("flowchart: write %s: %w", path, err)
	}
	return nil
}

func writeHeader(b *strings.Builder, generatedAt time.Time) {
	fmt.Fprintf(b, "%%%%{init: {'theme':'dark', 'themeVariables': { 'fontSize':'14px', 'primaryColor':'%s', 'primaryTextColor':'#fff', 'primaryBorderColor':'%s', 'lineColor':'%s', 'secondaryColor':'%s', 'tertiaryColor':'%s'}}}%%%%\n",
		colorAuthorize, colorSelect, colorAuthorize, colorPrepare, colorImplement)
	b.WriteString("graph TB\n")
	b.WriteString("    %% =========================================================================\n")
	b.WriteString("    %% RMF Lifecycle Flowchart - NIST SP 800-37 Rev 2, Steps 1-7\n")
	fmt.Fprintf(b, "    %%%% Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("    %%\n")
	b.WriteString("    %% Every NIST SP 800-53 Rev 4 control flows through the full lifecycle:\n")
	b.WriteString("    %%   1. PREPARE  2. SELECT  3. IMPLEMENT  4. ASSESS\n")
	b.WriteString("    %%   5. AUTHORIZE  6. MONITOR  7. DECOMMISSION\n")
	b.WriteString("    %% =========================================================================\n\n")
	b.WriteString("    START([\U0001F6E1️ RMF Process Start])\n")
	fmt.Fprintf(b, "    style START fill:%s,stroke:%s,stroke-width:3px,color:#000\n\n", colorAuthorize, colorSelect)
}

func writeMainFlow(b *strings.Builder) {
	steps := []struct {
		id, label, fill, stroke, text string
	}{
		{"PREPARE", "Step 1: PREPARE<br/>Prepare Organization<br/>& System", colorPrepare, colorAuthorize, "#fff"},
		{"SELECT", "Step 2: SELECT<br/>Select Security<br/>Controls", colorSelect, colorAuthorize, "#fff"},
		{"IMPLEMENT", "Step 3: IMPLEMENT<br/>Implement Security<br/>Controls", colorImplement, colorAuthorize, "#fff"},
		{"ASSESS", "Step 4: ASSESS<br/>Assess Control<br/>Effectiveness", colorAssess, colorAuthorize, "#fff"},
		{"AUTHORIZE", "Step 5: AUTHORIZE<br/>Authorize System<br/>Operation", colorAuthorize, colorSelect, "#000"},
		{"MONITOR", "Step 6: MONITOR<br/>Continuous<br/>Monitoring", colorMonitor, colorAuthorize, "#fff"},
		{"DECOMMISSION", "Step 7: DECOMMISSION<br/>Dispose of<br/>System/Data", colorDecommission, colorAuthorize, "#fff"},
	}

	b.WriteString("    %% Main RMF flow (7 steps)\n")
	prev := "START"
	for _, s := range steps {
		fmt.Fprintf(b, "    %s --> %s\n", prev, s.id)
		fmt.Fprintf(b, "    %s[%s]\n", s.id, s.label)
		fmt.Fprintf(b, "    style %s fill:%s,stroke:%s,stroke-width:2px,color:%s\n\n", s.id, s.fill, s.stroke, s.text)
		prev = s.id
	}
	b.WriteString("    DECOMMISSION --> END\n")
	b.WriteString("    END([✅ RMF Complete])\n")
	fmt.Fprintf(b, "    style END fill:%s,stroke:%s,stroke-width:3px,color:#000\n\n", colorAuthorize, colorSelect)
}

// writeControlNodes emits SELECT/IMPLEMENT/ASSESS/MONITOR nodes for each
// control, grouped by family in sorted order.
func writeControlNodes(b *strings.Builder, controls []model.Control) {
	b.WriteString("    %% Per-control lifecycle nodes, grouped by family\n\n")

	families := map[string][]model.Control{}
	for _, c := range controls {
		families[c.Family] = append(families[c.Family], c)
	}
	codes := make([]string, 0, len(families))
	for code := range families {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		fmt.Fprintf(b, "    %%%% %s family controls\n", code)
		for _, c := range families[code] {
			safe := SanitizeID(c.ControlID)

			fmt.Fprintf(b, "    SELECT --> SEL_%s\n", safe)
			fmt.Fprintf(b, "    SEL_%s[%s<br/>Selected]\n", safe, c.ControlID)
			fmt.Fprintf(b, "    style SEL_%s fill:%s,stroke:%s,color:#fff\n", safe, colorSelect, colorAuthorize)

			fmt.Fprintf(b, "    SEL_%s --> IMP_%s\n", safe, safe)
			fmt.Fprintf(b, "    IMP_%s[%s<br/>Implemented]\n", safe, c.ControlID)
			fmt.Fprintf(b, "    style IMP_%s fill:%s,stroke:%s,color:#fff\n", safe, colorImplement, colorAuthorize)

			fmt.Fprintf(b, "    IMP_%s --> ASS_%s\n", safe, safe)
			fmt.Fprintf(b, "    ASS_%s[%s<br/>Assessed]\n", safe, c.ControlID)
			fmt.Fprintf(b, "    style ASS_%s fill:%s,stroke:%s,color:#fff\n", safe, colorAssess, colorAuthorize)

			fmt.Fprintf(b, "    ASS_%s --> AUTHORIZE\n", safe)

			fmt.Fprintf(b, "    MONITOR --> MON_%s\n", safe)
			fmt.Fprintf(b, "    MON_%s[%s<br/>Monitored]\n", safe, c.ControlID)
			fmt.Fprintf(b, "    style MON_%s fill:%s,stroke:%s,color:#fff\n\n", safe, colorMonitor, colorAuthorize)
		}
	}
}

func writeLegend(b *strings.Builder) {
	entries := []struct {
		id, label, fill, text string
	}{
		{"L1", "Step 1: PREPARE", colorPrepare, "#fff"},
		{"L2", "Step 2: SELECT", colorSelect, "#fff"},
		{"L3", "Step 3: IMPLEMENT", colorImplement, "#fff"},
		{"L4", "Step 4: ASSESS", colorAssess, "#fff"},
		{"L5", "Step 5: AUTHORIZE", colorAuthorize, "#000"},
		{"L6", "Step 6: MONITOR", colorMonitor, "#fff"},
		{"L7", "Step 7: DECOMMISSION", colorDecommission, "#fff"},
	}

	b.WriteString("    subgraph LEGEND[\" \U0001F4CB RMF Steps Legend \"]\n")
	for _, e := range entries {
		fmt.Fprintf(b, "        %s[%s]\n", e.id, e.label)
		stroke := colorAuthorize
		if e.fill == colorAuthorize {
			stroke = colorSelect
		}
		fmt.Fprintf(b, "        style %s fill:%s,stroke:%s,color:%s\n", e.id, e.fill, stroke, e.text)
	}
	b.WriteString("    end\n")
	fmt.Fprintf(b, "    style LEGEND fill:#0a0a0f,stroke:%s,stroke-width:2px\n", colorAuthorize)
}
