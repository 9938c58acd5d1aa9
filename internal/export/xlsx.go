package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RenderXLSX builds a single-worksheet workbook: row 1 is the header row,
// data rows follow in order with column order preserved. Numeric cells are
// written as native numbers so sorting and filtering behave downstream.
func RenderXLSX(title string, headers []string, rows [][]Cell) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sanitizeSheetName(title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for col, h := range headers {
		axis, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, axis, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, axis, axis, headerStyle); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		for col, cell := range row {
			axis, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, err
			}
			var value interface{}
			if cell.Kind == CellNumber {
				value = cell.Number
			} else {
				value = cell.Text
			}
			if err := f.SetCellValue(sheet, axis, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeSheetName strips the characters Excel forbids in worksheet names
// and enforces the 31-character limit. Truncation counts runes, not bytes,
// so a multibyte title cannot be cut mid-rune into invalid UTF-8.
func sanitizeSheetName(title string) string {
	replacer := strings.NewReplacer(
		":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "",
	)
	name := strings.TrimSpace(replacer.Replace(title))
	if name == "" {
		name = "Export"
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}
