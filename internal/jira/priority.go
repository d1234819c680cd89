package jira

// Jira field values used by the bulk-import CSVs.
const (
	IssueTypeEpic  = "Epic"
	IssueTypeStory = "Story"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Story point estimates per RMF task type.
const (
	pointsImplement = 8
	pointsAssess    = 5
	pointsVerify    = 3
)

// highPriorityFamilies are the critical security families; mediumPriority
// covers the operational ones. Everything else imports as Low.
var (
	highPriorityFamilies   = map[string]bool{"AC": true, "AU": true, "IA": true, "SC": true, "SI": true}
	mediumPriorityFamilies = map[string]bool{"CM": true, "CP": true, "IR": true, "RA": true, "CA": true}
)

// PriorityForFamily maps a control family to a Jira priority level.
func PriorityForFamily(family string) string {
	switch {
	case highPriorityFamilies[family]:
		return PriorityHigh
	case mediumPriorityFamilies[family]:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
