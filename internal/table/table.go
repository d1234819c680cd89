package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"rmf-docgen/internal/model"
)

// Header is the fixed canonical-file column set. The writer always emits
// this order; the reader binds by name so reordered files still load.
var Header = []string{"control_id", "family", "cci_count", "sample_text"}

var flattenNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Sorted returns the catalog ordered by (family asc, control_id asc).
// Both keys compare lexicographically on the full string, so "AC-10"
// sorts before "AC-2". Downstream regression baselines depend on that
// ordering; do not switch to a numeric comparison.
func Sorted(catalog model.Catalog) []model.Control {
	out := make([]model.Control, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].ControlID < out[j].ControlID
	})
	return out
}

// Write serializes the catalog to the canonical CSV at path, one record
// per physical row. Embedded newlines in sample text are collapsed to
// spaces before writing; everything else relies on standard CSV quoting.
func Write(path string, catalog model.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("table: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}
	for _, c := range Sorted(catalog) {
		row := []string{
			c.ControlID,
			c.Family,
			strconv.Itoa(c.CCICount),
			flattenNewlines.Replace(c.SampleText),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("table: write row %s: %w", c.ControlID, err)
		}
	}
	w.Flush()
	return w.Error()
}

// Read loads the canonical file and returns its records in file order.
// A missing file surfaces as an error satisfying errors.Is(err,
// os.ErrNotExist) so callers can tell the operator to run the fetch step.
func Read(path string) ([]model.Control, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("table: read header of %s: %w", path, err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, want := range Header {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("table: %s is missing column %q", path, want)
		}
	}

	var out []model.Control
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read %s line %d: %w", path, line, err)
		}
		count, err := strconv.Atoi(row[cols["cci_count"]])
		if err != nil {
			return nil, fmt.Errorf("table: %s line %d: bad cci_count: %w", path, line, err)
		}
		out = append(out, model.Control{
			ControlID:  row[cols["control_id"]],
			Family:     row[cols["family"]],
			CCICount:   count,
			SampleText: row[cols["sample_text"]],
		})
	}
	return out, nil
}
