package tablediff

import (
	"github.com/Ospina115/comparador-excel/pkg/models"
)

// Differ computes row-level differences between two versions of a table.
// The comparison is directional: added and modified rows are reported from
// table B's point of view, and removed rows are not computed.
type Differ struct {
	keys *KeyDetector
}

// NewDiffer creates a differ using the given key detector. A nil detector
// uses the default key candidates.
func NewDiffer(keys *KeyDetector) *Differ {
	if keys == nil {
		keys = NewKeyDetector(nil)
	}
	return &Differ{keys: keys}
}

// Diff compares table A (older) against table B (newer). When A has a key
// column that also exists in B, rows are matched by key value: new keys in B
// are added, common keys with differing content are modified. Without a
// usable shared key, rows are matched by content fingerprint and only added
// rows can be reported.
//
// Duplicate key values are tolerated: the first occurrence in each table is
// authoritative and later occurrences of the same key are ignored.
func (d *Differ) Diff(a, b *models.Table) *models.DiffResult {
	key, ok := d.keys.Detect(a)
	if ok && b.ColumnIndex(key) >= 0 {
		return d.diffByKey(a, b, key)
	}
	return d.diffByFingerprint(a, b)
}

// diffByKey matches rows by their key value. Output columns are ordered with
// the key first, then the remaining table B columns in their defined order.
func (d *Differ) diffByKey(a, b *models.Table, key string) *models.DiffResult {
	outCols := keyFirstColumns(b, key)
	aCol := a.ColumnIndex(key)
	bCol := b.ColumnIndex(key)

	// first occurrence per key wins
	aIdx := indexByKey(a, aCol)
	bIdx := indexByKey(b, bCol)

	added := models.NewTable(outCols)
	for i, row := range b.Rows {
		kv := row[bCol]
		if _, exists := aIdx[kv]; exists {
			continue
		}
		if bIdx[kv] != i {
			continue
		}
		added.AppendRow(projectRow(b, row, outCols))
	}

	modified := models.NewTable(outCols)
	seen := make(map[string]struct{}, len(a.Rows))
	for _, row := range a.Rows {
		kv := row[aCol]
		if _, dup := seen[kv]; dup {
			continue
		}
		seen[kv] = struct{}{}

		bRow, exists := bIdx[kv]
		if !exists {
			continue
		}
		if !rowsEqual(a, aIdx[kv], b, bRow) {
			modified.AppendRow(projectRow(b, b.Rows[bRow], outCols))
		}
	}

	return &models.DiffResult{Added: added, Modified: modified, KeyColumn: key}
}

// diffByFingerprint matches rows by content hash. Added rows keep all of
// table B's columns in their original order; modifications cannot be
// detected without a key.
func (d *Differ) diffByFingerprint(a, b *models.Table) *models.DiffResult {
	inA := make(map[string]struct{}, len(a.Rows))
	for _, row := range a.Rows {
		inA[Fingerprint(row)] = struct{}{}
	}

	cols := append([]string(nil), b.Columns...)
	added := models.NewTable(cols)
	for _, row := range b.Rows {
		if _, exists := inA[Fingerprint(row)]; !exists {
			added.AppendRow(row)
		}
	}

	return &models.DiffResult{
		Added:    added,
		Modified: models.NewTable(cols),
	}
}

// indexByKey maps each key value to the row index of its first occurrence
func indexByKey(t *models.Table, keyCol int) map[string]int {
	idx := make(map[string]int, len(t.Rows))
	for i, row := range t.Rows {
		if _, dup := idx[row[keyCol]]; !dup {
			idx[row[keyCol]] = i
		}
	}
	return idx
}

// keyFirstColumns returns the table's columns reordered with the key first
func keyFirstColumns(t *models.Table, key string) []string {
	cols := make([]string, 0, len(t.Columns))
	cols = append(cols, key)
	for _, c := range t.Columns {
		if c != key {
			cols = append(cols, c)
		}
	}
	return cols
}

// projectRow extracts the named columns from a row of t, in order
func projectRow(t *models.Table, row []string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = row[t.ColumnIndex(c)]
	}
	return out
}

// rowsEqual compares two rows over the union of both tables' columns. A
// column present on only one side always counts as a difference.
func rowsEqual(a *models.Table, aRow int, b *models.Table, bRow int) bool {
	for _, c := range a.Columns {
		va, _ := a.Cell(aRow, c)
		vb, okB := b.Cell(bRow, c)
		if !okB || va != vb {
			return false
		}
	}
	for _, c := range b.Columns {
		if a.ColumnIndex(c) < 0 {
			return false
		}
	}
	return true
}
