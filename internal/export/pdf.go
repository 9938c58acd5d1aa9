package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// SectionKind selects the accent color for a section's table header so each
// logical group of tables is visually distinct.
type SectionKind int

const (
	SectionStats SectionKind = iota
	SectionTopics
	SectionAttention
	SectionHistory
)

// KV is one line of a labeled key/value block.
type KV struct {
	Key   string
	Value string
}

// Section is one titled block of a paginated document: either a key/value
// block, a table, or both. A section with no key/values and no rows is
// omitted from the output entirely.
type Section struct {
	Title     string
	Kind      SectionKind
	KeyValues []KV
	Headers   []string
	Rows      [][]Cell
}

// DocumentMeta drives the cover block and the running header/footer bands.
type DocumentMeta struct {
	Title        string
	Subtitle     string
	SubjectName  string
	SubjectEmail string
	GeneratedAt  time.Time
	Brand        string
	Counters     []KV // top-line counters shown under the cover block
}

// Page geometry in millimeters (A4 portrait). The header and footer bands
// are excluded from content flow.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 22.0
	footerBand   = 18.0
	contentWidth = pageWidth - marginLeft - marginRight

	lineHeight   = 6.0
	rowHeight    = 7.0
	headingGap   = 4.0
	sectionGap   = 8.0
	contentLimit = pageHeight - footerBand
)

// Cursor is the running vertical offset threaded through section rendering.
// Every draw helper takes the current cursor and returns the advanced one;
// there is no mutable layout state outside the PDF object itself.
type Cursor struct {
	Y float64
}

// breakNeeded reports whether drawing a block of the required height at the
// cursor would cross into the footer band. Pure so it is testable without a
// PDF in hand.
func breakNeeded(cur Cursor, required, limit float64) bool {
	return cur.Y+required > limit
}

// RenderDocument lays the sections into a paginated PDF with a cover block,
// running header/footer bands and per-kind accent colors. Sections render
// strictly in the order given, each starting below the previous section's
// last content line.
// compressStreams is disabled in tests so page content stays inspectable.
var compressStreams = true

func RenderDocument(sections []Section, meta DocumentMeta) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compressStreams)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, footerBand)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.SetXY(marginLeft, 8)
		pdf.CellFormat(contentWidth/2, 6, meta.Title, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentWidth/2, 6, meta.GeneratedAt.Format("Jan 2, 2006 15:04"), "", 0, "R", false, 0, "")
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(marginLeft, 15, pageWidth-marginRight, 15)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(contentWidth/2, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, 6, meta.Brand, "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	cur := drawCover(pdf, meta)

	for _, sec := range sections {
		if len(sec.KeyValues) == 0 && len(sec.Rows) == 0 {
			continue
		}
		cur = drawSection(pdf, sec, cur)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return out.Bytes(), nil
}

func drawCover(pdf *fpdf.Fpdf, meta DocumentMeta) Cursor {
	pdf.SetY(marginTop)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(contentWidth, 10, meta.Title, "", 1, "L", false, 0, "")

	if meta.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(contentWidth, 7, meta.Subtitle, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	if meta.SubjectName != "" {
		line := meta.SubjectName
		if meta.SubjectEmail != "" {
			line += " <" + meta.SubjectEmail + ">"
		}
		pdf.CellFormat(contentWidth, lineHeight, line, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentWidth, lineHeight, "Generated "+meta.GeneratedAt.Format("January 2, 2006 at 15:04 MST"), "", 1, "L", false, 0, "")

	if len(meta.Counters) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 10)
		for _, kv := range meta.Counters {
			pdf.SetTextColor(60, 60, 60)
			pdf.CellFormat(60, lineHeight, kv.Key, "", 0, "L", false, 0, "")
			pdf.SetTextColor(30, 30, 30)
			pdf.CellFormat(contentWidth-60, lineHeight, kv.Value, "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(2)
	return Cursor{Y: pdf.GetY()}
}

func drawSection(pdf *fpdf.Fpdf, sec Section, cur Cursor) Cursor {
	cur = advance(cur, sectionGap)

	// Keep the heading attached to at least one content line.
	cur = ensureRoom(pdf, cur, lineHeight+headingGap+rowHeight)

	pdf.SetXY(marginLeft, cur.Y)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(contentWidth, lineHeight, sec.Title, "", 1, "L", false, 0, "")
	cur = advance(cur, lineHeight+headingGap)

	if len(sec.KeyValues) > 0 {
		cur = drawKeyValues(pdf, sec.KeyValues, cur)
	}
	if len(sec.Rows) > 0 {
		cur = drawTable(pdf, sec, cur)
	}
	return cur
}

func drawKeyValues(pdf *fpdf.Fpdf, kvs []KV, cur Cursor) Cursor {
	pdf.SetFont("Helvetica", "", 10)
	for _, kv := range kvs {
		cur = ensureRoom(pdf, cur, lineHeight)
		pdf.SetXY(marginLeft, cur.Y)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(70, lineHeight, kv.Key, "", 0, "L", false, 0, "")
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(contentWidth-70, lineHeight, kv.Value, "", 1, "L", false, 0, "")
		cur = advance(cur, lineHeight)
	}
	return cur
}

func drawTable(pdf *fpdf.Fpdf, sec Section, cur Cursor) Cursor {
	if len(sec.Headers) == 0 {
		return cur
	}
	colWidth := contentWidth / float64(len(sec.Headers))

	cur = ensureRoom(pdf, cur, rowHeight*2)
	cur = drawTableHeader(pdf, sec, cur, colWidth)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	for _, row := range sec.Rows {
		if breakNeeded(cur, rowHeight, contentLimit) {
			pdf.AddPage()
			cur = Cursor{Y: marginTop}
			// Repeat the header row on every new page the table spills onto.
			cur = drawTableHeader(pdf, sec, cur, colWidth)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(30, 30, 30)
		}
		pdf.SetXY(marginLeft, cur.Y)
		for i := range sec.Headers {
			text := ""
			align := "L"
			if i < len(row) {
				text = row[i].String()
				if row[i].Kind == CellNumber {
					align = "R"
				}
			}
			pdf.CellFormat(colWidth, rowHeight, text, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		cur = advance(cur, rowHeight)
	}
	return cur
}

func drawTableHeader(pdf *fpdf.Fpdf, sec Section, cur Cursor, colWidth float64) Cursor {
	r, g, b := accentFill(sec.Kind)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, cur.Y)
	for _, h := range sec.Headers {
		pdf.CellFormat(colWidth, rowHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	return advance(cur, rowHeight)
}

// accentFill maps a section kind to its header fill. The exact values are
// an implementation choice; the contract is that each kind is distinct.
func accentFill(kind SectionKind) (int, int, int) {
	switch kind {
	case SectionTopics:
		return 41, 128, 185 // blue
	case SectionAttention:
		return 192, 57, 43 // red
	case SectionHistory:
		return 39, 174, 96 // green
	default:
		return 90, 90, 110 // slate, statistics tables
	}
}

func advance(cur Cursor, by float64) Cursor {
	return Cursor{Y: cur.Y + by}
}

// ensureRoom starts a new page when the required height will not fit above
// the footer band, returning the cursor on whichever page drawing should
// continue.
func ensureRoom(pdf *fpdf.Fpdf, cur Cursor, required float64) Cursor {
	if breakNeeded(cur, required, contentLimit) {
		pdf.AddPage()
		return Cursor{Y: marginTop}
	}
	return cur
}
