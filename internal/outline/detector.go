// Package outline infers a document's title and heading hierarchy from
// the typography of its extracted text runs. No embedded PDF outline
// metadata is consulted; structure is learned per document from the
// statistical frequency of (font size, bold) styles.
package outline

import (
	"math"
	"strings"

	"github.com/docpeek/pdf-outline/internal/pdf"
)

// DefaultTitle is reported when no title can be derived from the first page.
const DefaultTitle = "Title not found"

// Style is the typographic signature of a text run: its rounded font
// size and whether the font name marks it as bold. Styles are compared
// structurally and used as lookup keys.
type Style struct {
	Size int  `json:"size"`
	Bold bool `json:"bold"`
}

// StyleOf derives the style of a span. The size is rounded to the
// nearest integer before any comparison; boldness is a case-insensitive
// substring test on the font name.
func StyleOf(s pdf.Span) Style {
	return Style{
		Size: roundSize(s.Size),
		Bold: strings.Contains(strings.ToLower(s.Font), "bold"),
	}
}

// roundSize rounds a font size to the nearest integer, halves to even,
// so 10.5pt and 10pt text share one style bucket while 11.5pt joins 12.
func roundSize(size float64) int {
	return int(math.RoundToEven(size))
}

// LevelMap maps heading styles to their level label ("H1".."H3").
type LevelMap map[Style]string

// IgnoreSet holds first-page text lines excluded from outline
// consideration (subtitles, bylines, publisher lines).
type IgnoreSet map[string]struct{}

// Contains reports whether the exact text is in the set.
func (s IgnoreSet) Contains(text string) bool {
	_, ok := s[text]
	return ok
}

// Entry is one detected heading in document order.
type Entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the inferred structure of one document.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// DetectionConfig configures the outline heuristics.
type DetectionConfig struct {
	MaxHeadingLevels       int      // heading styles mapped to levels, largest first
	MaxTrailingPeriodWords int      // period-terminated lines longer than this are form sentences
	FormFieldLabels        []string // exact lowercase matches rejected as headings
}

// DefaultDetectionConfig returns the default detection configuration.
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		MaxHeadingLevels:       3,
		MaxTrailingPeriodWords: 4,
		FormFieldLabels: []string{
			"name",
			"age",
			"relationship",
			"date",
			"signature of government servant.",
		},
	}
}

// Detector runs the outline inference passes over an extracted document.
type Detector struct {
	config DetectionConfig
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultDetectionConfig()}
}

// NewDetectorWithConfig creates a detector with a custom configuration.
func NewDetectorWithConfig(config DetectionConfig) *Detector {
	return &Detector{config: config}
}

// DetectOutline runs the full inference pipeline on one document: title
// and ignore-set analysis of the first page, style hierarchy learning
// over the body pages, then outline assembly over the whole document.
// An empty learned hierarchy short-circuits assembly entirely; the
// document is then assumed to be a form or other non-prose layout.
func (d *Detector) DetectOutline(doc *pdf.Document) Result {
	title, ignore := d.AnalyzeTitlePage(doc)

	result := Result{Title: title, Outline: []Entry{}}

	levels := d.LearnHierarchy(doc)
	if len(levels) == 0 {
		return result
	}

	result.Outline = d.BuildOutline(doc, title, ignore, levels)
	return result
}
