package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestRenderCSVQuotesEveryCell(t *testing.T) {
	out := RenderCSV(
		[]string{"Topic", "Correct", "Accuracy %"},
		[][]Cell{
			{Text("Algebra"), Int(12), Int(80)},
			{Text("Geometry"), Int(1), Int(20)},
		},
	)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[0] != `"Topic","Correct","Accuracy %"` {
		t.Errorf("header line = %s", lines[0])
	}
	if lines[1] != `"Algebra","12","80"` {
		t.Errorf("data line = %s", lines[1])
	}
	if bytes.Contains(out, []byte("\r")) {
		t.Error("output contains CR, rows must be LF-separated")
	}
}

func TestRenderCSVEscapesQuotesAndSeparators(t *testing.T) {
	out := RenderCSV(
		[]string{"Name"},
		[][]Cell{
			{Text(`Smith, "Jo"`)},
			{Text("line1\nline2")},
		},
	)

	// Output with embedded commas, quotes and newlines must still parse
	// back to the same values with a standard reader.
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v\noutput:\n%s", err, out)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[1][0] != `Smith, "Jo"` {
		t.Errorf("round-tripped cell = %q", records[1][0])
	}
	if records[2][0] != "line1\nline2" {
		t.Errorf("round-tripped multiline cell = %q", records[2][0])
	}
}

func TestRenderCSVHeaderOnly(t *testing.T) {
	out := RenderCSV([]string{"A", "B"}, nil)
	if string(out) != "\"A\",\"B\"\n" {
		t.Errorf("header-only output = %q", out)
	}
}

func TestRenderCSVNumberFormatting(t *testing.T) {
	out := RenderCSV([]string{"Score"}, [][]Cell{{Number(72.5)}, {Number(40)}})
	want := "\"Score\"\n\"72.5\"\n\"40\"\n"
	if string(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}
