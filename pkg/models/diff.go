package models

// DiffResult holds the outcome of comparing two tables. Both tables may be
// empty; removed rows are intentionally not computed (the comparison is
// directional, from A towards B).
type DiffResult struct {
	// Added holds rows present in table B but absent from table A,
	// matched by key value or by row fingerprint
	Added *Table

	// Modified holds rows whose key exists in both tables but whose
	// content differs; values come from table B (the newer file).
	// Always empty in fingerprint mode.
	Modified *Table

	// KeyColumn is the column used for key-based diffing, empty when the
	// comparison fell back to row fingerprints
	KeyColumn string
}

// IsEmpty reports whether the diff found neither added nor modified rows
func (r *DiffResult) IsEmpty() bool {
	return r.Added.IsEmpty() && r.Modified.IsEmpty()
}
