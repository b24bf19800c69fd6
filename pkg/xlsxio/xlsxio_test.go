package xlsxio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// writeWorkbook creates a workbook whose first sheet holds the given rows
func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to build cell ref: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()

	t.Run("HeadersAndRows", func(t *testing.T) {
		path := filepath.Join(dir, "padron.xlsx")
		writeWorkbook(t, path, [][]interface{}{
			{"id", "name"},
			{"1", "Ana"},
			{"2", "Luis"},
		})

		table, err := LoadTable(path)
		if err != nil {
			t.Fatalf("LoadTable() error = %v", err)
		}

		if len(table.Columns) != 2 || table.Columns[0] != "id" {
			t.Errorf("Columns = %v, want [id name]", table.Columns)
		}
		if table.NumRows() != 2 {
			t.Fatalf("NumRows() = %d, want 2", table.NumRows())
		}
		if table.Rows[1][1] != "Luis" {
			t.Errorf("Rows[1][1] = %q, want Luis", table.Rows[1][1])
		}
	})

	t.Run("ShortRowsPadded", func(t *testing.T) {
		path := filepath.Join(dir, "ragged.xlsx")
		writeWorkbook(t, path, [][]interface{}{
			{"id", "name", "city"},
			{"1"},
		})

		table, err := LoadTable(path)
		if err != nil {
			t.Fatalf("LoadTable() error = %v", err)
		}

		if len(table.Rows[0]) != 3 {
			t.Fatalf("row width = %d, want 3", len(table.Rows[0]))
		}
		if table.Rows[0][2] != "" {
			t.Errorf("padded cell = %q, want empty", table.Rows[0][2])
		}
	})

	t.Run("EmptySheet", func(t *testing.T) {
		path := filepath.Join(dir, "empty.xlsx")
		writeWorkbook(t, path, nil)

		table, err := LoadTable(path)
		if err != nil {
			t.Fatalf("LoadTable() error = %v", err)
		}
		if !table.IsEmpty() {
			t.Error("empty sheet should load as empty table")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadTable(filepath.Join(dir, "nope.xlsx")); err == nil {
			t.Error("LoadTable() should fail for missing file")
		}
	})

	t.Run("CorruptFile", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.xlsx")
		if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
			t.Fatalf("failed to create corrupt file: %v", err)
		}

		if _, err := LoadTable(path); err == nil {
			t.Error("LoadTable() should fail for corrupt file")
		}
	})
}

func TestListWorkbooks(t *testing.T) {
	dir := t.TempDir()

	touch := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	touch("b.xlsx")
	touch("a.XLSM")
	touch("c.xls")
	touch("notes.txt")
	touch("~$b.xlsx")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	touch(filepath.Join("sub", "nested.xlsx"))

	files, err := ListWorkbooks(dir)
	if err != nil {
		t.Fatalf("ListWorkbooks() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.XLSM"),
		filepath.Join(dir, "b.xlsx"),
		filepath.Join(dir, "c.xls"),
	}
	if len(files) != len(want) {
		t.Fatalf("ListWorkbooks() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestWriteResult(t *testing.T) {
	dir := t.TempDir()

	added := models.NewTable([]string{"id", "name"})
	added.AppendRow([]string{"3", "Maria"})

	t.Run("AddedOnly", func(t *testing.T) {
		path := filepath.Join(dir, "added_only.xlsx")
		result := &models.DiffResult{
			Added:    added,
			Modified: models.NewTable([]string{"id", "name"}),
		}

		if err := WriteResult(path, result); err != nil {
			t.Fatalf("WriteResult() error = %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("failed to reopen result: %v", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) != 1 || sheets[0] != SheetAdded {
			t.Errorf("sheets = %v, want [added]", sheets)
		}

		rows, err := f.GetRows(SheetAdded)
		if err != nil {
			t.Fatalf("failed to read added sheet: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("added sheet rows = %d, want 2 (header + data)", len(rows))
		}
		if rows[0][0] != "id" || rows[1][1] != "Maria" {
			t.Errorf("added sheet content = %v", rows)
		}
	})

	t.Run("AddedAndModified", func(t *testing.T) {
		modified := models.NewTable([]string{"id", "name"})
		modified.AppendRow([]string{"2", "Luisa"})

		path := filepath.Join(dir, "both.xlsx")
		result := &models.DiffResult{Added: added, Modified: modified}

		if err := WriteResult(path, result); err != nil {
			t.Fatalf("WriteResult() error = %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("failed to reopen result: %v", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) != 2 {
			t.Fatalf("sheets = %v, want [added modified]", sheets)
		}
	})

	t.Run("EmptyResultRejected", func(t *testing.T) {
		result := &models.DiffResult{
			Added:    models.NewTable([]string{"id"}),
			Modified: models.NewTable([]string{"id"}),
		}
		if err := WriteResult(filepath.Join(dir, "empty.xlsx"), result); err == nil {
			t.Error("WriteResult() should refuse an empty result")
		}
	})
}

func TestOutputName(t *testing.T) {
	got := OutputName("padron_2023", "padron_2024")
	want := "padron_2023_vs_padron_2024_comparacion.xlsx"
	if got != want {
		t.Errorf("OutputName() = %q, want %q", got, want)
	}
}
