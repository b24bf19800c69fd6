package tablediff

import (
	"github.com/Ospina115/comparador-excel/pkg/models"
)

// DefaultKeyCandidates lists header names accepted as key columns without a
// uniqueness check. The spellings mirror the identifier headers found in the
// registry exports this tool audits.
var DefaultKeyCandidates = []string{
	"id", "ID", "Id",
	"codigo", "Código",
	"codigo_municipio", "codigo_munic", "codigoMunicipio",
	"cod",
}

// KeyDetector infers which column of a table, if any, acts as a unique row
// identifier
type KeyDetector struct {
	candidates map[string]struct{}
}

// NewKeyDetector creates a detector for the given candidate header names.
// An empty candidate list falls back to DefaultKeyCandidates.
func NewKeyDetector(candidates []string) *KeyDetector {
	if len(candidates) == 0 {
		candidates = DefaultKeyCandidates
	}
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	return &KeyDetector{candidates: set}
}

// Detect returns the key column of a table. Columns are scanned in table
// order: the first whose name matches a candidate wins even if its values
// repeat; otherwise the first column whose values are all distinct wins.
// Empty cells count as values, so two blank cells are duplicates. Returns
// false when no column qualifies.
func (d *KeyDetector) Detect(t *models.Table) (string, bool) {
	for _, c := range t.Columns {
		if _, ok := d.candidates[c]; ok {
			return c, true
		}
	}

	for i, c := range t.Columns {
		if columnIsUnique(t, i) {
			return c, true
		}
	}

	return "", false
}

func columnIsUnique(t *models.Table, col int) bool {
	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		if _, dup := seen[row[col]]; dup {
			return false
		}
		seen[row[col]] = struct{}{}
	}
	return true
}
