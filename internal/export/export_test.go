package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var exportNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestRenderRoutesByType(t *testing.T) {
	req := Request{
		Title:   "User List",
		Headers: []string{"Name", "Attempts"},
		Rows:    [][]Cell{{Text("Jane"), Int(4)}},
	}

	tests := []struct {
		typ         string
		contentType string
		filename    string
		prefix      []byte
	}{
		{"csv", "text/csv", "user-list-2025-06-15.csv", []byte(`"Name"`)},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "user-list-2025-06-15.xlsx", []byte("PK")},
		{"pdf", "application/pdf", "user-list-2025-06-15.pdf", []byte("%PDF-")},
		{"  PDF ", "application/pdf", "user-list-2025-06-15.pdf", []byte("%PDF-")},
	}
	for _, tt := range tests {
		req.Type = tt.typ
		res, err := Render(req, "QBank", exportNow)
		if err != nil {
			t.Fatalf("Render(%q): %v", tt.typ, err)
		}
		if res.ContentType != tt.contentType {
			t.Errorf("Render(%q) content type = %q, want %q", tt.typ, res.ContentType, tt.contentType)
		}
		if res.Filename != tt.filename {
			t.Errorf("Render(%q) filename = %q, want %q", tt.typ, res.Filename, tt.filename)
		}
		if !bytes.HasPrefix(res.Body, tt.prefix) {
			t.Errorf("Render(%q) body does not start with %q", tt.typ, tt.prefix)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	for _, typ := range []string{"", "docx", "CSV2"} {
		_, err := Render(Request{Type: typ, Title: "x"}, "QBank", exportNow)
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("Render(%q) error = %v, want ErrUnknownFormat", typ, err)
		}
	}
}

func TestRenderEmptyRows(t *testing.T) {
	res, err := Render(Request{Type: "csv", Title: "Empty", Headers: []string{"A", "B"}}, "QBank", exportNow)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(res.Body) != "\"A\",\"B\"\n" {
		t.Errorf("header-only body = %q", res.Body)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		ext   string
		want  string
	}{
		{"Performance Report", "pdf", "performance-report-2025-06-15.pdf"},
		{"  Q1   results!! ", "csv", "q1-results-2025-06-15.csv"},
		{"///", "xlsx", "export-2025-06-15.xlsx"},
		{"", "csv", "export-2025-06-15.csv"},
	}
	for _, tt := range tests {
		if got := Filename(tt.title, exportNow, tt.ext); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Performance Report", "performance-report"},
		{"already-slugged", "already-slugged"},
		{"under_scores too", "under-scores-too"},
		{"trailing space ", "trailing-space"},
		{"symbols &*% stripped", "symbols-stripped"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCellUnmarshalJSON(t *testing.T) {
	var req Request
	payload := `{"type":"csv","title":"t","headers":["a","b","c"],"rows":[["Algebra",80,true]]}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	row := req.Rows[0]
	if row[0].Kind != CellText || row[0].Text != "Algebra" {
		t.Errorf("row[0] = %+v, want text cell", row[0])
	}
	if row[1].Kind != CellNumber || row[1].Number != 80 {
		t.Errorf("row[1] = %+v, want numeric cell 80", row[1])
	}
	if row[2].Kind != CellText || row[2].Text != "true" {
		t.Errorf("row[2] = %+v, want raw token kept as text", row[2])
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Int(42), "42"},
		{Number(72.5), "72.5"},
		{Number(0), "0"},
		{Text("hello"), "hello"},
		{Text(""), ""},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}
