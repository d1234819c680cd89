package model

// Family is one NIST 800-53 control family.
type Family struct {
	Code string
	Name string
}

// Families is the fixed 800-53 Rev 4 family table. Order matters: the
// fallback generator walks it in sequence so synthetic catalogs are
// reproducible across runs.
var Families = []Family{
	{"AC", "Access Control"},
	{"AU", "Audit and Accountability"},
	{"AT", "Awareness and Training"},
	{"CM", "Configuration Management"},
	{"CP", "Contingency Planning"},
	{"IA", "Identification and Authentication"},
	{"IR", "Incident Response"},
	{"MA", "Maintenance"},
	{"MP", "Media Protection"},
	{"PS", "Personnel Security"},
	{"PE", "Physical and Environmental Protection"},
	{"PL", "Planning"},
	{"PM", "Program Management"},
	{"RA", "Risk Assessment"},
	{"CA", "Security Assessment and Authorization"},
	{"SC", "System and Communications Protection"},
	{"SI", "System and Information Integrity"},
	{"SA", "System and Services Acquisition"},
}

// FamilyName resolves a family code to its descriptive name, or "Other"
// for codes outside the Rev 4 table.
func FamilyName(code string) string {
	for _, f := range Families {
		if f.Code == code {
			return f.Name
		}
	}
	return "Other"
}
