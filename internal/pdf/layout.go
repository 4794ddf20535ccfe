package pdf

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Layout tuning constants.
const (
	defaultLineTolerance  = 2.0  // max baseline drift within one line, points
	defaultWordGapFactor  = 0.3  // fraction of font size treated as a word gap
	defaultBlockGapFactor = 1.8  // line gaps beyond this multiple of font size split blocks
	defaultFontSize       = 12.0 // fallback when a fragment carries no size
)

// LayoutConfig controls how raw positioned text fragments are grouped
// into lines, spans, and blocks.
type LayoutConfig struct {
	LineTolerance  float64 // vertical tolerance for fragments sharing a baseline
	WordGapFactor  float64 // horizontal gap (relative to font size) that separates words
	BlockGapFactor float64 // vertical gap (relative to font size) that separates blocks
}

// DefaultLayoutConfig returns the default layout configuration.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		LineTolerance:  defaultLineTolerance,
		WordGapFactor:  defaultWordGapFactor,
		BlockGapFactor: defaultBlockGapFactor,
	}
}

// buildBlocks groups a page's raw text fragments into blocks of lines of
// spans. Fragments are first clustered by baseline, then ordered left to
// right within each line; adjacent fragments sharing a font signature
// merge into a single span.
func buildBlocks(fragments []pdf.Text, cfg LayoutConfig) []Block {
	lines := buildLines(fragments, cfg)
	if len(lines) == 0 {
		return nil
	}

	var blocks []Block
	current := Block{Lines: []Line{lines[0]}}
	for i := 1; i < len(lines); i++ {
		prev := current.Lines[len(current.Lines)-1]
		gap := prev.Y - lines[i].Y
		if gap > cfg.BlockGapFactor*lineFontSize(prev) {
			blocks = append(blocks, current)
			current = Block{}
		}
		current.Lines = append(current.Lines, lines[i])
	}
	blocks = append(blocks, current)

	return blocks
}

// buildLines clusters fragments by baseline and assembles spans.
func buildLines(fragments []pdf.Text, cfg LayoutConfig) []Line {
	kept := make([]pdf.Text, 0, len(fragments))
	for _, f := range fragments {
		if f.S != "" {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	// Top of page first. Stable so the extractor's emission order breaks
	// exact ties.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Y > kept[j].Y
	})

	var groups [][]pdf.Text
	currentY := kept[0].Y
	current := []pdf.Text{kept[0]}
	for _, f := range kept[1:] {
		if currentY-f.Y > cfg.LineTolerance {
			groups = append(groups, current)
			current = nil
			currentY = f.Y
		}
		current = append(current, f)
	}
	groups = append(groups, current)

	lines := make([]Line, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].X < g[j].X
		})
		lines = append(lines, Line{Y: g[0].Y, Spans: mergeSpans(g, cfg)})
	}
	return lines
}

// mergeSpans folds left-to-right fragments into spans, starting a new
// span whenever the font name or size changes. A horizontal gap wider
// than WordGapFactor of the font size inserts a space.
func mergeSpans(fragments []pdf.Text, cfg LayoutConfig) []Span {
	var spans []Span
	var b strings.Builder
	var cur pdf.Text
	haveCur := false
	endX := 0.0

	flush := func() {
		if haveCur {
			spans = append(spans, Span{Text: b.String(), Font: cur.Font, Size: cur.FontSize})
			b.Reset()
		}
	}

	for _, f := range fragments {
		if haveCur && (f.Font != cur.Font || f.FontSize != cur.FontSize) {
			flush()
			haveCur = false
		}
		if haveCur {
			size := f.FontSize
			if size == 0 {
				size = defaultFontSize
			}
			if f.X-endX > cfg.WordGapFactor*size && !strings.HasSuffix(b.String(), " ") {
				b.WriteString(" ")
			}
		}
		b.WriteString(f.S)
		cur = f
		haveCur = true
		endX = f.X + f.W
	}
	flush()

	return spans
}

// lineFontSize returns the font size of a line's first span, falling
// back to a standard body size for degenerate fragments.
func lineFontSize(l Line) float64 {
	if len(l.Spans) > 0 && l.Spans[0].Size > 0 {
		return l.Spans[0].Size
	}
	return defaultFontSize
}
