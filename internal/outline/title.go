package outline

import (
	"github.com/docpeek/pdf-outline/internal/pdf"
)

// AnalyzeTitlePage examines the first page only. Every block's first
// line is classified by the rounded size of its first span: lines at the
// page's maximum size are title fragments, joined in block order into
// the title; all other first lines form the ignore set so that subtitles
// and publisher lines never surface as headings later.
func (d *Detector) AnalyzeTitlePage(doc *pdf.Document) (string, IgnoreSet) {
	ignore := IgnoreSet{}

	if doc == nil || len(doc.Pages) == 0 {
		return DefaultTitle, ignore
	}

	firstPage := doc.Pages[0]
	if len(firstPage.Blocks) == 0 {
		return DefaultTitle, ignore
	}

	maxFontSize := 0
	for _, block := range firstPage.Blocks {
		if len(block.Lines) == 0 || len(block.Lines[0].Spans) == 0 {
			continue
		}
		size := roundSize(block.Lines[0].Spans[0].Size)
		if size > maxFontSize {
			maxFontSize = size
		}
	}

	// Degenerate layout: no block opens with a styled span. Fall back to
	// the first raw text line found anywhere on the page.
	if maxFontSize == 0 {
		if text := firstRawLine(firstPage); text != "" {
			return text, ignore
		}
		return DefaultTitle, ignore
	}

	var titleFragments []string
	for _, block := range firstPage.Blocks {
		if len(block.Lines) == 0 || len(block.Lines[0].Spans) == 0 {
			continue
		}
		first := block.Lines[0]
		text := first.Text()
		if roundSize(first.Spans[0].Size) == maxFontSize {
			titleFragments = append(titleFragments, text)
		} else {
			ignore[text] = struct{}{}
		}
	}

	if len(titleFragments) == 0 {
		return DefaultTitle, ignore
	}

	title := titleFragments[0]
	for _, fragment := range titleFragments[1:] {
		title += " " + fragment
	}
	return title, ignore
}

// firstRawLine returns the text of the first non-empty line on the page.
func firstRawLine(page pdf.Page) string {
	for _, block := range page.Blocks {
		for _, line := range block.Lines {
			if text := line.Text(); text != "" {
				return text
			}
		}
	}
	return ""
}
