package xlsxio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// Extensions recognised as spreadsheet workbooks
var Extensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".xlsm": true,
}

// ListWorkbooks returns the workbook files that are direct children of dir,
// sorted by name. Subdirectories are not descended into and Office lock
// files ("~$" prefix) are ignored. Extension matching is case-insensitive.
func ListWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if !Extensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

// LoadTable reads the first sheet of a workbook into a table. The first row
// is treated as column headers; data rows are padded or truncated to the
// header width. Legacy formats excelize cannot parse surface as errors and
// are handled by the caller at the pair level.
func LoadTable(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", path, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return models.NewTable(nil), nil
	}
	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row from %s: %w", path, err)
	}

	table := models.NewTable(headers)
	for rows.Next() {
		cells, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read data row from %s: %w", path, err)
		}
		table.AppendRow(cells)
	}

	return table, nil
}
