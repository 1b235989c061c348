package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/runnerr0/patina/internal/layout"
)

// Worksheet names cap out at 31 characters in the XLSX format.
const maxSheetNameLen = 31

func sheetName(name string) string {
	if name == "" {
		return "Sheet"
	}
	if len(name) > maxSheetNameLen {
		return name[:maxSheetNameLen]
	}
	return name
}

// WriteWorkbook renders the given worksheets to an XLSX file at path.
// The first sheet replaces the format's mandatory default sheet.
func WriteWorkbook(path string, sheets []Sheet) error {
	if err := layout.EnsureParent(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	for i, sheet := range sheets {
		name := sheetName(sheet.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("create sheet %q: %w", name, err)
			}
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return fmt.Errorf("cell name for row %d: %w", r+1, err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return fmt.Errorf("write row %d of %q: %w", r+1, name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}
