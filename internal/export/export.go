package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Format is the requested output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ErrUnknownFormat is returned for a type outside {csv, xlsx, pdf} so the
// handler can reject the request with a client error before any rendering.
var ErrUnknownFormat = fmt.Errorf("unknown export format")

// Request is one generic tabular export. Constructed by a caller from a
// report (or any tabular data), consumed exactly once, discarded after the
// response is sent.
type Request struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// Result is the rendered byte stream with the response metadata the
// HTTP layer needs.
type Result struct {
	Body        []byte
	ContentType string
	Filename    string
}

// Render routes a generic export request to the matching renderer. Empty
// headers or rows still produce a valid header-only document; only an
// unknown type fails. PDF requests here render the flat table as a single
// section; the report-specific PDF endpoints build richer sections
// themselves and do not come through this path.
func Render(req Request, brand string, now time.Time) (Result, error) {
	format := Format(strings.ToLower(strings.TrimSpace(req.Type)))

	switch format {
	case FormatCSV:
		return Result{
			Body:        RenderCSV(req.Headers, req.Rows),
			ContentType: "text/csv",
			Filename:    Filename(req.Title, now, "csv"),
		}, nil
	case FormatXLSX:
		body, err := RenderXLSX(req.Title, req.Headers, req.Rows)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Body:        body,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    Filename(req.Title, now, "xlsx"),
		}, nil
	case FormatPDF:
		sections := []Section{{
			Title:   req.Title,
			Kind:    SectionStats,
			Headers: req.Headers,
			Rows:    req.Rows,
		}}
		body, err := RenderDocument(sections, DocumentMeta{
			Title:       req.Title,
			GeneratedAt: now,
			Brand:       brand,
		})
		if err != nil {
			return Result{}, err
		}
		return Result{
			Body:        body,
			ContentType: "application/pdf",
			Filename:    Filename(req.Title, now, "pdf"),
		}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormat, req.Type)
	}
}

// Filename derives an attachment name from the title: whitespace collapses
// to hyphens, anything outside letters/digits/hyphen is dropped, and the
// result is date-stamped.
func Filename(title string, now time.Time, ext string) string {
	slug := Slugify(title)
	if slug == "" {
		slug = "export"
	}
	return fmt.Sprintf("%s-%s.%s", slug, now.Format("2006-01-02"), ext)
}

// Slugify lowercases the title, turns runs of whitespace into single
// hyphens and strips everything that is not a letter, digit or hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
