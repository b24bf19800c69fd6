package models

// Table is an in-memory view of one worksheet: an ordered list of named
// columns and the data rows below them. Every row has exactly one cell per
// column; missing cells are represented as empty strings.
type Table struct {
	// Columns are the header names in sheet order
	Columns []string

	// Rows holds the data rows in sheet order, each padded to len(Columns)
	Rows [][]string
}

// NewTable creates a table with the given headers and no rows
func NewTable(columns []string) *Table {
	return &Table{
		Columns: columns,
		Rows:    make([][]string, 0),
	}
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1 if the table
// has no such column. Lookup is case-sensitive, matching header cells as read.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, column name). The second return value is
// false when the column does not exist; a missing cell reads as "".
func (t *Table) Cell(row int, column string) (string, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][idx], true
}

// AppendRow adds a data row, padding or truncating it to the column count
func (t *Table) AppendRow(row []string) {
	padded := make([]string, len(t.Columns))
	copy(padded, row)
	t.Rows = append(t.Rows, padded)
}

// IsEmpty reports whether the table has no data rows
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}
