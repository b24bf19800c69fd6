package models

import (
	"testing"
	"time"
)

// ============== Table Tests ==============

func TestTable(t *testing.T) {
	t.Run("AppendRowPadsShortRows", func(t *testing.T) {
		tbl := NewTable([]string{"id", "name", "city"})
		tbl.AppendRow([]string{"1", "Ana"})

		if got := len(tbl.Rows[0]); got != 3 {
			t.Errorf("row length = %d, want 3", got)
		}
		if tbl.Rows[0][2] != "" {
			t.Errorf("missing cell = %q, want empty string", tbl.Rows[0][2])
		}
	})

	t.Run("AppendRowTruncatesLongRows", func(t *testing.T) {
		tbl := NewTable([]string{"id"})
		tbl.AppendRow([]string{"1", "stray"})

		if got := len(tbl.Rows[0]); got != 1 {
			t.Errorf("row length = %d, want 1", got)
		}
	})

	t.Run("ColumnIndex", func(t *testing.T) {
		tbl := NewTable([]string{"id", "name"})

		if idx := tbl.ColumnIndex("name"); idx != 1 {
			t.Errorf("ColumnIndex(name) = %d, want 1", idx)
		}
		if idx := tbl.ColumnIndex("NAME"); idx != -1 {
			t.Errorf("ColumnIndex(NAME) = %d, want -1 (lookup is case-sensitive)", idx)
		}
		if idx := tbl.ColumnIndex("missing"); idx != -1 {
			t.Errorf("ColumnIndex(missing) = %d, want -1", idx)
		}
	})

	t.Run("Cell", func(t *testing.T) {
		tbl := NewTable([]string{"id", "name"})
		tbl.AppendRow([]string{"1", "Ana"})

		v, ok := tbl.Cell(0, "name")
		if !ok || v != "Ana" {
			t.Errorf("Cell(0, name) = %q, %v, want Ana, true", v, ok)
		}
		if _, ok := tbl.Cell(0, "missing"); ok {
			t.Error("Cell should report false for unknown column")
		}
		if _, ok := tbl.Cell(5, "id"); ok {
			t.Error("Cell should report false for out-of-range row")
		}
	})

	t.Run("IsEmpty", func(t *testing.T) {
		var nilTable *Table
		if !nilTable.IsEmpty() {
			t.Error("nil table should be empty")
		}

		tbl := NewTable([]string{"id"})
		if !tbl.IsEmpty() {
			t.Error("table without rows should be empty")
		}

		tbl.AppendRow([]string{"1"})
		if tbl.IsEmpty() {
			t.Error("table with rows should not be empty")
		}
	})
}

// ============== DiffResult Tests ==============

func TestDiffResult(t *testing.T) {
	t.Run("EmptyWhenBothTablesEmpty", func(t *testing.T) {
		r := &DiffResult{
			Added:    NewTable([]string{"id"}),
			Modified: NewTable([]string{"id"}),
		}
		if !r.IsEmpty() {
			t.Error("result with no rows should be empty")
		}
	})

	t.Run("NotEmptyWithAddedRows", func(t *testing.T) {
		added := NewTable([]string{"id"})
		added.AppendRow([]string{"3"})
		r := &DiffResult{Added: added, Modified: NewTable([]string{"id"})}
		if r.IsEmpty() {
			t.Error("result with added rows should not be empty")
		}
	})
}

// ============== CompareOperation Tests ==============

func TestCompareOperationValidate(t *testing.T) {
	valid := func() *CompareOperation {
		return &CompareOperation{
			ID:             "test-op",
			FolderA:        "/data/a",
			FolderB:        "/data/b",
			OutputDir:      "comparisons_output",
			FuzzyThreshold: 0.9,
			CreatedAt:      time.Now(),
		}
	}

	t.Run("Valid", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("MissingFolderA", func(t *testing.T) {
		op := valid()
		op.FolderA = ""
		if err := op.Validate(); err == nil {
			t.Error("Validate() should fail without folder A")
		}
	})

	t.Run("MissingFolderB", func(t *testing.T) {
		op := valid()
		op.FolderB = ""
		if err := op.Validate(); err == nil {
			t.Error("Validate() should fail without folder B")
		}
	})

	t.Run("ThresholdOutOfRange", func(t *testing.T) {
		for _, threshold := range []float64{-0.1, 1.5} {
			op := valid()
			op.FuzzyThreshold = threshold
			if err := op.Validate(); err == nil {
				t.Errorf("Validate() should fail for threshold %v", threshold)
			}
		}
	})

	t.Run("ValidationErrorMessage", func(t *testing.T) {
		err := &ValidationError{Field: "fuzzy_threshold", Message: "must be between 0 and 1"}
		want := "fuzzy_threshold: must be between 0 and 1"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

// ============== RunStatus Tests ==============

func TestRunStatusExitCode(t *testing.T) {
	tests := []struct {
		status RunStatus
		code   int
	}{
		{StatusSuccess, 0},
		{StatusPartial, 1},
		{StatusFailed, 2},
		{StatusCancelled, 3},
		{RunStatus("unknown"), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}
