package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func TestBreakNeeded(t *testing.T) {
	tests := []struct {
		name     string
		cur      Cursor
		required float64
		limit    float64
		want     bool
	}{
		{"fits with room to spare", Cursor{Y: 100}, 10, 279, false},
		{"lands exactly on the limit", Cursor{Y: 269}, 10, 279, false},
		{"crosses the limit", Cursor{Y: 270}, 10, 279, true},
		{"already past the limit", Cursor{Y: 290}, 1, 279, true},
		{"zero height never breaks", Cursor{Y: 279}, 0, 279, false},
	}
	for _, tt := range tests {
		if got := breakNeeded(tt.cur, tt.required, tt.limit); got != tt.want {
			t.Errorf("%s: breakNeeded(%v, %v, %v) = %v, want %v",
				tt.name, tt.cur.Y, tt.required, tt.limit, got, tt.want)
		}
	}
}

func testMeta() DocumentMeta {
	return DocumentMeta{
		Title:       "Performance Report",
		SubjectName: "Jane Doe",
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Brand:       "QBank",
	}
}

func TestRenderDocumentProducesPDF(t *testing.T) {
	sections := []Section{
		{
			Title: "Overall Statistics",
			Kind:  SectionStats,
			KeyValues: []KV{
				{Key: "Total attempts", Value: "3"},
				{Key: "Overall accuracy", Value: "60%"},
			},
		},
		{
			Title:   "Topic Performance",
			Kind:    SectionTopics,
			Headers: []string{"Topic", "Correct", "Wrong"},
			Rows: [][]Cell{
				{Text("Algebra"), Int(12), Int(3)},
			},
		},
	}

	body, err := RenderDocument(sections, testMeta())
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", body[:min(8, len(body))])
	}
	if len(body) < 500 {
		t.Errorf("suspiciously small document: %d bytes", len(body))
	}
}

func TestRenderDocumentSkipsEmptySections(t *testing.T) {
	// Render uncompressed so section headings are visible as literal text
	// in the page content streams.
	compressStreams = false
	defer func() { compressStreams = true }()

	body, err := RenderDocument([]Section{
		{Title: "Has Data", Kind: SectionStats, KeyValues: []KV{{Key: "k", Value: "v"}}},
		{Title: "Skipped When Empty", Kind: SectionAttention},
	}, testMeta())
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	if !bytes.Contains(body, []byte("Has Data")) {
		t.Fatal("populated section heading missing from content stream")
	}
	if bytes.Contains(body, []byte("Skipped When Empty")) {
		t.Error("empty section heading rendered, section should be omitted entirely")
	}
}

func TestRenderDocumentPaginatesLongTables(t *testing.T) {
	rows := make([][]Cell, 120)
	for i := range rows {
		rows[i] = []Cell{Text(fmt.Sprintf("topic %d", i)), Int(i), Int(i * 2)}
	}
	single := []Section{{
		Title:   "Topic Performance",
		Kind:    SectionTopics,
		Headers: []string{"Topic", "Correct", "Wrong"},
		Rows:    rows,
	}}

	long, err := RenderDocument(single, testMeta())
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	short, err := RenderDocument([]Section{{
		Title:   "Topic Performance",
		Kind:    SectionTopics,
		Headers: []string{"Topic", "Correct", "Wrong"},
		Rows:    rows[:2],
	}}, testMeta())
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if len(long) <= len(short) {
		t.Errorf("120-row document (%d bytes) not larger than 2-row document (%d bytes)", len(long), len(short))
	}
}

func TestAccentFillDistinctPerKind(t *testing.T) {
	kinds := []SectionKind{SectionStats, SectionTopics, SectionAttention, SectionHistory}
	seen := make(map[[3]int]SectionKind)
	for _, k := range kinds {
		r, g, b := accentFill(k)
		key := [3]int{r, g, b}
		if prev, dup := seen[key]; dup {
			t.Errorf("kinds %v and %v share accent color %v", prev, k, key)
		}
		seen[key] = k
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
