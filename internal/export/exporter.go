package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"bookprice-service/internal/model"
)

// ErrEmptySelection is returned when an export is requested with no
// selected records. No file is produced in that case.
var ErrEmptySelection = errors.New("empty export selection")

// SheetName is the fixed sheet title of exported workbooks.
const SheetName = "書籍資料"

// Filename builds the download name for an export started at the given
// time.
func Filename(at time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", SheetName, at.Format("2006-01-02"))
}

// Exporter turns a selection over the record set into a spreadsheet.
type Exporter struct {
	writer SheetWriter
}

// NewExporter returns an Exporter backed by the given sheet writer.
func NewExporter(writer SheetWriter) *Exporter {
	return &Exporter{writer: writer}
}

// Export resolves the selected ids against records (in record-set order,
// duplicates ignored), shapes the rows, and writes the workbook to w. It
// returns the dated filename for the download. An empty or fully
// unresolvable selection returns ErrEmptySelection before anything is
// written.
func (e *Exporter) Export(records []model.PriceRecord, ids []string, at time.Time, w io.Writer) (string, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var selected []model.PriceRecord
	for i := range records {
		if wanted[records[i].ProductID] {
			selected = append(selected, records[i])
			delete(wanted, records[i].ProductID)
		}
	}
	if len(selected) == 0 {
		return "", ErrEmptySelection
	}

	if err := e.writer.WriteSheet(BuildRows(selected), SheetName, w); err != nil {
		return "", err
	}
	return Filename(at), nil
}
