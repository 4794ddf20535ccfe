package outline

import (
	"github.com/docpeek/pdf-outline/internal/pdf"
)

// BuildOutline walks every block on every page in document order and
// emits an entry when the block's first line carries a style mapped to
// a learned heading level and its text passes validation. Only a
// block's first line is inspected; a heading never opens mid-block.
// Lines matching the title verbatim or present in the ignore set are
// skipped. Entries keep traversal order; repeated headings are not
// deduplicated.
func (d *Detector) BuildOutline(doc *pdf.Document, title string, ignore IgnoreSet, levels LevelMap) []Entry {
	entries := []Entry{}
	if doc == nil {
		return entries
	}

	for pageIndex, page := range doc.Pages {
		for _, block := range page.Blocks {
			if len(block.Lines) == 0 || len(block.Lines[0].Spans) == 0 {
				continue
			}
			line := block.Lines[0]

			text := line.Text()
			if text == "" || text == title || ignore.Contains(text) {
				continue
			}

			level, ok := levels[StyleOf(line.Spans[0])]
			if !ok || !d.IsValidHeading(text) {
				continue
			}

			entries = append(entries, Entry{
				Level: level,
				Text:  text,
				Page:  pageIndex + 1,
			})
		}
	}

	return entries
}
