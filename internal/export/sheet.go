package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"bookprice-service/internal/model"
)

// SheetWriter serializes shaped rows into a spreadsheet. The row-shaping
// logic stays independent of any one spreadsheet library behind this seam.
type SheetWriter interface {
	WriteSheet(rows []model.OrderedMap, sheetName string, w io.Writer) error
}

// XLSXWriter writes .xlsx workbooks with excelize. One sheet per call: a
// header row from the column keys, then one row per record.
type XLSXWriter struct{}

// WriteSheet implements SheetWriter.
func (XLSXWriter) WriteSheet(rows []model.OrderedMap, sheetName string, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if len(rows) > 0 {
		for col, key := range rows[0].Keys() {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return fmt.Errorf("header cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, key); err != nil {
				return fmt.Errorf("write header %q: %w", key, err)
			}
		}
	}

	for i := range rows {
		for col, key := range rows[i].Keys() {
			value, _ := rows[i].Get(key)
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write row %d column %q: %w", i+1, key, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
