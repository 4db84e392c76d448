package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetWriter writes tabular data into a spreadsheet, one sheet per table.
type SheetWriter interface {
	AddSheet(name string) error
	WriteHeader(columns []string) error
	WriteRow(row []any) error
	Save(w io.Writer) error
	SaveToFile(path string) error
	Close() error
}

// ExcelizeWriter implements SheetWriter on top of excelize.
type ExcelizeWriter struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

func NewExcelizeWriter() SheetWriter {
	return &ExcelizeWriter{
		file: excelize.NewFile(),
	}
}

func (w *ExcelizeWriter) AddSheet(name string) error {
	// Excel caps sheet names at 31 chars
	if len(name) > 31 {
		name = name[:31]
	}

	if w.currentSheet == "" {
		// Rename the default sheet instead of leaving an empty Sheet1 behind
		w.file.SetSheetName("Sheet1", name)
	} else {
		_, err := w.file.NewSheet(name)
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

func (w *ExcelizeWriter) WriteHeader(columns []string) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, col); err != nil {
			return err
		}
	}

	style, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, w.currentRow)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), w.currentRow)
		_ = w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
	}

	w.currentRow++
	return nil
}

func (w *ExcelizeWriter) WriteRow(row []any) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, val); err != nil {
			return err
		}
	}

	w.currentRow++
	return nil
}

func (w *ExcelizeWriter) Save(wr io.Writer) error {
	return w.file.Write(wr)
}

func (w *ExcelizeWriter) SaveToFile(path string) error {
	return w.file.SaveAs(path)
}

func (w *ExcelizeWriter) Close() error {
	return w.file.Close()
}
