package models

// FilePair is a candidate correspondence between a workbook in folder A and
// one in folder B. Pairs are computed once per run and consumed immediately.
type FilePair struct {
	// PathA is the full path of the file in folder A (the older export)
	PathA string

	// PathB is the full path of the matched file in folder B (the newer export)
	PathB string

	// Score is the name similarity in [0,1]; 1.0 for exact matches
	Score float64
}
