package pdf

import "strings"

// Span is a run of text sharing one font name and size within a line.
type Span struct {
	Text string  `json:"text"`
	Font string  `json:"font"`
	Size float64 `json:"size"`
}

// Line is a sequence of spans sharing one baseline.
type Line struct {
	Y     float64 `json:"y"`
	Spans []Span  `json:"spans"`
}

// Text returns the space-joined, trimmed text of all spans on the line.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Spans))
	for _, s := range l.Spans {
		parts = append(parts, s.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Block is a group of vertically adjacent lines.
type Block struct {
	Lines []Line `json:"lines"`
}

// Page holds the text blocks of one rendered page, in reading order.
type Page struct {
	Blocks []Block `json:"blocks"`
}

// Document is the extracted text-run view of a PDF. Pages are ordered;
// page numbers in results are the 0-based slice index plus one.
type Document struct {
	Path  string `json:"path"`
	Pages []Page `json:"pages"`
}
