package outline

import (
	"github.com/docpeek/pdf-outline/internal/pdf"
)

// Test document builders. Fonts are named so the bold substring test is
// exercised the same way real font names exercise it.

func span(text string, size float64, font string) pdf.Span {
	return pdf.Span{Text: text, Size: size, Font: font}
}

func line(spans ...pdf.Span) pdf.Line {
	return pdf.Line{Spans: spans}
}

func block(lines ...pdf.Line) pdf.Block {
	return pdf.Block{Lines: lines}
}

func page(blocks ...pdf.Block) pdf.Page {
	return pdf.Page{Blocks: blocks}
}

func document(pages ...pdf.Page) *pdf.Document {
	return &pdf.Document{Path: "test.pdf", Pages: pages}
}

// textLine builds a single-span line in the regular body font.
func textLine(text string, size float64) pdf.Line {
	return line(span(text, size, "Helvetica"))
}

// boldLine builds a single-span line in a bold font.
func boldLine(text string, size float64) pdf.Line {
	return line(span(text, size, "Helvetica-Bold"))
}

// proseBlock builds a block of n body lines at the given size.
func proseBlock(size float64, texts ...string) pdf.Block {
	lines := make([]pdf.Line, 0, len(texts))
	for _, t := range texts {
		lines = append(lines, textLine(t, size))
	}
	return pdf.Block{Lines: lines}
}
