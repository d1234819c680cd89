package model

import (
	"strings"

	"github.com/google/uuid"
)

// SampleTextLimit bounds the free-text excerpt carried by a control.
// The excerpt is display-only; nothing downstream parses it.
const SampleTextLimit = 200

// Control is one NIST 800-53 control row in the canonical table.
type Control struct {
	ControlID  string `json:"controlId"`
	Family     string `json:"family"`
	CCICount   int    `json:"cciCount"`
	SampleText string `json:"sampleText"`
}

// Catalog is the in-memory control set, keyed by control ID.
// Records are created first-seen-wins during accumulation and never
// mutated after the canonical file is written.
type Catalog map[string]Control

// FamilyOf derives the family code from a control ID: the prefix before
// the first hyphen, or "OTHER" when no hyphen is present. The family is
// always derived, never stored independently, so the two cannot diverge.
func FamilyOf(controlID string) string {
	if i := strings.Index(controlID, "-"); i >= 0 {
		return controlID[:i]
	}
	return "OTHER"
}

// NewControl builds a record for a control seen for the first time.
// CCICount starts at zero; the accumulator increments it per sighting.
func NewControl(controlID, sampleText string) Control {
	return Control{
		ControlID:  controlID,
		Family:     FamilyOf(controlID),
		SampleText: TruncateSample(sampleText),
	}
}

// TruncateSample bounds text to SampleTextLimit characters. Truncation
// counts runes, not bytes, so a multibyte character is never split and
// the canonical file stays valid UTF-8.
func TruncateSample(text string) string {
	if len(text) <= SampleTextLimit {
		return text
	}
	r := []rune(text)
	if len(r) <= SampleTextLimit {
		return text
	}
	return string(r[:SampleTextLimit])
}

// NewRunID returns a fresh identifier for one pipeline run.
func NewRunID() string {
	return uuid.NewString()
}
