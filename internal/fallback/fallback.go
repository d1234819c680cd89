package fallback

import (
	"fmt"

	"rmf-docgen/internal/model"
)

// Controls synthesized per family when the authoritative source is
// unavailable. The placeholder CCI count keeps downstream templates
// rendering something sensible.
const (
	controlsPerFamily   = 10
	placeholderCCICount = 3
)

// Catalog synthesizes a deterministic control set spanning every family
// in the Rev 4 table: 10 controls per family, numbered 1 through 10.
// Two invocations produce identical output, so documentation generated
// offline stays diff-stable across runs.
func Catalog() model.Catalog {
	catalog := model.Catalog{}
	for _, fam := range model.Families {
		for i := 1; i <= controlsPerFamily; i++ {
			id := fmt.Sprintf("%s-%d", fam.Code, i)
			catalog[id] = model.Control{
				ControlID:  id,
				Family:     fam.Code,
				CCICount:   placeholderCCICount,
				SampleText: fmt.Sprintf("%s - Control %d", fam.Name, i),
			}
		}
	}
	return catalog
}
