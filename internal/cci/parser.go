package cci

import (
	"encoding/xml"
	"fmt"
	"strings"

	"rmf-docgen/internal/model"
)

// targetTitle is the reference title this pipeline extracts. Other
// revisions present in the CCI list are ignored.
const targetTitle = "NIST SP 800-53 Revision 4"

type cciList struct {
	Items []cciItem `xml:"cci_items>cci_item"`
}

type cciItem struct {
	ID         string         `xml:"id,attr"`
	Definition string         `xml:"definition"`
	References []cciReference `xml:"references>reference"`
}

type cciReference struct {
	Title string `xml:"title,attr"`
	Index string `xml:"index,attr"`
}

// Parse walks the CCI item list and accumulates controls keyed by
// normalized control ID. A control record is created on first sighting
// (family derived, sample text from that item's definition) and its CCI
// count is incremented on every sighting, including the first.
//
// An empty catalog is a valid non-error outcome; callers treat it the
// same as a failed download and fall back to synthesis.
func Parse(data []byte) (model.Catalog, error) {
	var doc cciList
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse CCI XML: %w", err)
	}

	catalog := model.Catalog{}
	for _, item := range doc.Items {
		for _, ref := range item.References {
			if ref.Title != targetTitle {
				continue
			}
			id := normalizeID(ref.Index)
			if id == "" || id == "Not Applicable" {
				continue
			}
			rec, seen := catalog[id]
			if !seen {
				rec = model.NewControl(id, item.Definition)
			}
			rec.CCICount++
			catalog[id] = rec
		}
	}
	return catalog, nil
}

// normalizeID flattens embedded newlines to spaces and trims the result,
// e.g. "AC-2\n(1)" becomes "AC-2 (1)".
func normalizeID(index string) string {
	return strings.TrimSpace(strings.ReplaceAll(index, "\n", " "))
}
