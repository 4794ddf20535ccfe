package outline

import (
	"fmt"
	"sort"

	"github.com/docpeek/pdf-outline/internal/pdf"
)

// styleCount pairs a style with its occurrence count. Counts live in a
// slice rather than a map so that first-encountered order is preserved
// and ties resolve deterministically.
type styleCount struct {
	style Style
	count int
}

// LearnHierarchy scans the document body and derives the heading level
// map. The scan starts on the second page when the document has more
// than one, so a title page cannot skew the body style; otherwise it
// covers the only page. The most frequent (size, bold) style is assumed
// to be body text; any style larger than it, or equal-sized but bold and
// distinct, is a heading candidate. Candidates are ranked by descending
// size and the top MaxHeadingLevels become H1, H2, ... in order.
//
// An empty map means no heading structure was found and outline
// extraction should be skipped for the whole document.
func (d *Detector) LearnHierarchy(doc *pdf.Document) LevelMap {
	if doc == nil || len(doc.Pages) == 0 {
		return LevelMap{}
	}

	startPage := 0
	if len(doc.Pages) > 1 {
		startPage = 1
	}

	counts := countStyles(doc.Pages[startPage:])
	if len(counts) == 0 {
		return LevelMap{}
	}

	bodyStyle := mostFrequent(counts)

	var candidates []Style
	for _, sc := range counts {
		s := sc.style
		if s.Size > bodyStyle.Size || (s.Size == bodyStyle.Size && s.Bold && s != bodyStyle) {
			candidates = append(candidates, s)
		}
	}

	// Stable: equal sizes keep their table order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Size > candidates[j].Size
	})

	levels := LevelMap{}
	for i, s := range candidates {
		if i >= d.config.MaxHeadingLevels {
			break
		}
		levels[s] = fmt.Sprintf("H%d", i+1)
	}
	return levels
}

// countStyles builds the style frequency table from each line's first
// span. Only the first span is sampled; a line is assumed to be
// typographically uniform.
func countStyles(pages []pdf.Page) []styleCount {
	var counts []styleCount
	index := make(map[Style]int)

	for _, page := range pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				if len(line.Spans) == 0 {
					continue
				}
				style := StyleOf(line.Spans[0])
				if i, ok := index[style]; ok {
					counts[i].count++
				} else {
					index[style] = len(counts)
					counts = append(counts, styleCount{style: style, count: 1})
				}
			}
		}
	}
	return counts
}

// mostFrequent picks the highest-count style; on equal counts the
// first-encountered style wins.
func mostFrequent(counts []styleCount) Style {
	best := counts[0]
	for _, sc := range counts[1:] {
		if sc.count > best.count {
			best = sc
		}
	}
	return best.style
}
