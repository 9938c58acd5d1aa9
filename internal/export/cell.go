// Package export renders flat tabular data and multi-section reports into
// downloadable CSV, XLSX and PDF byte streams. Renderers treat rows as
// opaque tagged cells so the same code serves reports, user lists and
// activity logs alike.
package export

import (
	"encoding/json"
	"strconv"
)

type CellKind int

const (
	CellText CellKind = iota
	CellNumber
)

// Cell is a tagged variant so renderers can make type-correct decisions
// (native numeric cells in a spreadsheet, plain text in CSV) without
// runtime type inspection.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

func Text(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

func Number(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

func Int(n int) Cell {
	return Number(float64(n))
}

// String renders the cell for text-based output. Numbers use the shortest
// representation that round-trips, so 42 stays "42" rather than "42.000000".
func (c Cell) String() string {
	if c.Kind == CellNumber {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// UnmarshalJSON accepts the loosely-typed rows the export endpoint receives:
// JSON numbers become numeric cells, everything else is kept as text.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Text(s)
		return nil
	}
	// Booleans, nulls and nested values are not part of the contract;
	// stringify the raw token rather than failing the whole request.
	*c = Text(string(data))
	return nil
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Kind == CellNumber {
		return json.Marshal(c.Number)
	}
	return json.Marshal(c.Text)
}
