package cci

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func doc(items string) []byte {
	return []byte(`<?xml version="1.0" encoding="utf-8"?>
<cci_list xmlns="http://iase.disa.mil/cci">
  <cci_items>` + items + `</cci_items>
</cci_list>`)
}

func item(id, definition, refs string) string {
	return `<cci_item id="` + id + `">
  <definition>` + definition + `</definition>
  <references>` + refs + `</references>
</cci_item>`
}

func ref(title, index string) string {
	return `<reference title="` + title + `" index="` + index + `"/>`
}

func TestParseEnhancementIsDistinctControl(t *testing.T) {
	// One item referencing both a base control and its enhancement must
	// produce two records, each counted once.
	data := doc(item("CCI-000001", "Base access control policy.",
		ref("NIST SP 800-53 Revision 4", "AC-2")+
			ref("NIST SP 800-53 Revision 4", "AC-2 (1)")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("got %d controls, want 2", len(catalog))
	}
	for _, id := range []string{"AC-2", "AC-2 (1)"} {
		c, ok := catalog[id]
		if !ok {
			t.Fatalf("missing control %q", id)
		}
		if c.Family != "AC" {
			t.Errorf("%s family = %q, want AC", id, c.Family)
		}
		if c.CCICount != 1 {
			t.Errorf("%s cci_count = %d, want 1", id, c.CCICount)
		}
	}
}

func TestParseDuplicateAcrossItems(t *testing.T) {
	// Two items resolving to the same control ID: one record, count 2,
	// sample text from the first item encountered.
	data := doc(
		item("CCI-000100", "First boundary protection statement.",
			ref("NIST SP 800-53 Revision 4", "SC-7")) +
			item("CCI-000101", "Second boundary protection statement.",
				ref("NIST SP 800-53 Revision 4", "SC-7")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(catalog) != 1 {
		t.Fatalf("got %d controls, want 1", len(catalog))
	}
	c := catalog["SC-7"]
	if c.CCICount != 2 {
		t.Errorf("cci_count = %d, want 2", c.CCICount)
	}
	if c.SampleText != "First boundary protection statement." {
		t.Errorf("sample_text = %q, want first item's definition", c.SampleText)
	}
}

func TestParseSkipsEmptyAndNotApplicable(t *testing.T) {
	data := doc(item("CCI-000200", "Some definition.",
		ref("NIST SP 800-53 Revision 4", "")+
			ref("NIST SP 800-53 Revision 4", "Not Applicable")+
			ref("NIST SP 800-53 Revision 4", "   ")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("got %d controls, want 0", len(catalog))
	}
}

func TestParseIgnoresOtherRevisions(t *testing.T) {
	// Zero matching-title references is a valid, empty, non-error result.
	data := doc(item("CCI-000300", "Some definition.",
		ref("NIST SP 800-53 Revision 5", "AC-1")+
			ref("NIST SP 800-53", "AC-1")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("got %d controls, want 0", len(catalog))
	}
}

func TestParseNormalizesIndex(t *testing.T) {
	data := doc(item("CCI-000400", "Definition.",
		ref("NIST SP 800-53 Revision 4", "  AC-2&#10;(3)  ")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := catalog["AC-2 (3)"]; !ok {
		t.Errorf("normalized control ID missing, got %v", catalog)
	}
}

func TestParseFamilyWithoutHyphen(t *testing.T) {
	data := doc(item("CCI-000500", "Definition.",
		ref("NIST SP 800-53 Revision 4", "PM9")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := catalog["PM9"].Family; got != "OTHER" {
		t.Errorf("family = %q, want OTHER", got)
	}
}

func TestParseTruncatesSampleText(t *testing.T) {
	long := strings.Repeat("x", 500)
	data := doc(item("CCI-000600", long,
		ref("NIST SP 800-53 Revision 4", "AU-3")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(catalog["AU-3"].SampleText); got != 200 {
		t.Errorf("sample_text length = %d, want 200", got)
	}
}

func TestParseTruncatesMultibyteDefinition(t *testing.T) {
	// A multibyte rune straddling the truncation boundary must not be
	// split; the canonical file is declared UTF-8.
	long := strings.Repeat("a", 199) + "é…"
	data := doc(item("CCI-000700", long,
		ref("NIST SP 800-53 Revision 4", "AC-7")))

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := catalog["AC-7"].SampleText
	if !utf8.ValidString(got) {
		t.Fatalf("sample_text is not valid UTF-8, last bytes %x", got[len(got)-3:])
	}
	if want := strings.Repeat("a", 199) + "é"; got != want {
		t.Errorf("sample_text = %q, want 199 a's and an intact é", got[190:])
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("<cci_list><unclosed")); err == nil {
		t.Fatal("Parse of malformed XML returned nil error")
	}
}
