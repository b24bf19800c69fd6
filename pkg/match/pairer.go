package match

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// DefaultThreshold is the minimum similarity ratio for fuzzy pairing
const DefaultThreshold = 0.9

// Pairer matches workbooks between two folder listings by filename
// similarity. An exact case-insensitive match on the base name (without
// extension) always wins with score 1.0; otherwise the closest name by
// Ratcliff/Obershelp ratio is paired when it reaches the threshold.
type Pairer struct {
	threshold float64
}

// NewPairer creates a pairer with the given fuzzy threshold in [0,1]
func NewPairer(threshold float64) *Pairer {
	return &Pairer{threshold: threshold}
}

// Pair matches each file of filesA against filesB. Files of A with no exact
// or fuzzy counterpart produce no pair and are silently skipped. A file of B
// may be matched by more than one file of A; no uniqueness is enforced on
// the B side. Inputs are processed in base-name order so results do not
// depend on directory enumeration order.
func (p *Pairer) Pair(filesA, filesB []string) []models.FilePair {
	sortedA := sortByBase(filesA)
	sortedB := sortByBase(filesB)

	pairs := make([]models.FilePair, 0, len(sortedA))
	for _, fa := range sortedA {
		stemA := Stem(fa)

		if fb, ok := exactMatch(stemA, sortedB); ok {
			pairs = append(pairs, models.FilePair{PathA: fa, PathB: fb, Score: 1.0})
			continue
		}

		if fb, score, ok := p.closestMatch(stemA, sortedB); ok {
			pairs = append(pairs, models.FilePair{PathA: fa, PathB: fb, Score: score})
		}
	}
	return pairs
}

// Stem returns the base name of a path without its extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ratio computes the Ratcliff/Obershelp similarity of two strings in [0,1]
func Ratio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// exactMatch returns the first file of candidates whose stem equals stemA
// ignoring case
func exactMatch(stemA string, candidates []string) (string, bool) {
	lower := strings.ToLower(stemA)
	for _, fb := range candidates {
		if strings.ToLower(Stem(fb)) == lower {
			return fb, true
		}
	}
	return "", false
}

// closestMatch returns the candidate with the highest similarity to stemA,
// provided the ratio reaches the threshold. Ties keep the first candidate
// in base-name order.
func (p *Pairer) closestMatch(stemA string, candidates []string) (string, float64, bool) {
	best := ""
	bestScore := -1.0
	for _, fb := range candidates {
		if score := Ratio(stemA, Stem(fb)); score > bestScore {
			best = fb
			bestScore = score
		}
	}
	if best == "" || bestScore < p.threshold {
		return "", 0, false
	}
	return best, bestScore, true
}

func sortByBase(files []string) []string {
	sorted := append([]string(nil), files...)
	sort.Slice(sorted, func(i, j int) bool {
		return filepath.Base(sorted[i]) < filepath.Base(sorted[j])
	})
	return sorted
}
