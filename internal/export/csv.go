package export

import (
	"bytes"
	"strings"
)

// RenderCSV emits the header row followed by the data rows. Every cell is
// quoted unconditionally with embedded quotes doubled, and rows are joined
// by LF. Always-quoting keeps the output stable regardless of cell content,
// which is why this does not go through encoding/csv's minimal-quoting
// writer; the output still parses with any standard CSV reader.
func RenderCSV(headers []string, rows [][]Cell) []byte {
	var buf bytes.Buffer

	writeCSVRow(&buf, headers)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = c.String()
		}
		writeCSVRow(&buf, cells)
	}

	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
