package tablediff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

func buildTable(t *testing.T, columns []string, rows ...[]string) *models.Table {
	t.Helper()
	tbl := models.NewTable(columns)
	for _, row := range rows {
		tbl.AppendRow(row)
	}
	return tbl
}

func TestDetectNamedCandidate(t *testing.T) {
	d := NewKeyDetector(nil)
	tbl := buildTable(t, []string{"nombre", "id", "valor"},
		[]string{"Ana", "1", "10"},
		[]string{"Luis", "2", "20"},
	)

	key, ok := d.Detect(tbl)
	assert.True(t, ok)
	assert.Equal(t, "id", key)
}

func TestDetectNamedCandidateWinsOverUniqueness(t *testing.T) {
	// a column literally named "id" is the key even when its values repeat
	d := NewKeyDetector(nil)
	tbl := buildTable(t, []string{"serial", "id"},
		[]string{"s1", "1"},
		[]string{"s2", "1"},
	)

	key, ok := d.Detect(tbl)
	assert.True(t, ok)
	assert.Equal(t, "id", key)
}

func TestDetectCaseSensitiveNames(t *testing.T) {
	// "iD" is not in the candidate list; the unique "serial" column wins
	d := NewKeyDetector(nil)
	tbl := buildTable(t, []string{"iD", "serial"},
		[]string{"1", "s1"},
		[]string{"1", "s2"},
	)

	key, ok := d.Detect(tbl)
	assert.True(t, ok)
	assert.Equal(t, "serial", key)
}

func TestDetectUniquenessFallback(t *testing.T) {
	d := NewKeyDetector(nil)
	tbl := buildTable(t, []string{"grupo", "matricula"},
		[]string{"A", "m-001"},
		[]string{"A", "m-002"},
		[]string{"B", "m-003"},
	)

	key, ok := d.Detect(tbl)
	assert.True(t, ok)
	assert.Equal(t, "matricula", key)
}

func TestDetectFirstColumnOrderWins(t *testing.T) {
	// both columns are unique; the first in table order is picked
	d := NewKeyDetector(nil)
	tbl := buildTable(t, []string{"alfa", "beta"},
		[]string{"1", "x"},
		[]string{"2", "y"},
	)

	key, ok := d.Detect(tbl)
	assert.True(t, ok)
	assert.Equal(t, "alfa", key)
}

func TestDetectBlanksCountAsDuplicates(t *testing.T) {
	// two empty cells make a column non-unique
	d := NewKeyDetector(nil)
	tbl := buildTable(t, []string{"valor"},
		[]string{""},
		[]string{""},
	)

	_, ok := d.Detect(tbl)
	assert.False(t, ok)
}

func TestDetectNoKey(t *testing.T) {
	d := NewKeyDetector(nil)
	tbl := buildTable(t, []string{"x", "y"},
		[]string{"1", "2"},
		[]string{"1", "2"},
	)

	_, ok := d.Detect(tbl)
	assert.False(t, ok)
}

func TestDetectCustomCandidates(t *testing.T) {
	d := NewKeyDetector([]string{"expediente"})
	tbl := buildTable(t, []string{"id", "expediente"},
		[]string{"1", "e1"},
		[]string{"2", "e1"},
	)

	key, ok := d.Detect(tbl)
	assert.True(t, ok)
	assert.Equal(t, "expediente", key, "custom list replaces the default candidates")
}
