package xlsxio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// Result sheet names
const (
	SheetAdded    = "added"
	SheetModified = "modified"
)

// OutputName builds the file name for a pair's result workbook
func OutputName(stemA, stemB string) string {
	return fmt.Sprintf("%s_vs_%s_comparacion.xlsx", stemA, stemB)
}

// WriteResult writes a diff result as a workbook at path. A sheet is created
// only for the non-empty parts of the result; writing an empty result is an
// error, callers are expected to skip pairs without differences.
func WriteResult(path string, result *models.DiffResult) error {
	if result.IsEmpty() {
		return fmt.Errorf("refusing to write empty result to %s", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	if !result.Added.IsEmpty() {
		if err := writeSheet(f, SheetAdded, result.Added); err != nil {
			return err
		}
	}
	if !result.Modified.IsEmpty() {
		if err := writeSheet(f, SheetModified, result.Modified); err != nil {
			return err
		}
	}

	// drop the workbook's default sheet, keeping only result sheets
	if err := f.DeleteSheet(f.GetSheetName(0)); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save result workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, table *models.Table) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create stream writer for %s: %w", name, err)
	}

	header := make([]interface{}, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet %s: %w", name, err)
	}
	return nil
}
