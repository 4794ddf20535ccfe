package outline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutline_SinglePageTitleOnly(t *testing.T) {
	d := NewDetector()
	doc := document(page(block(textLine("Report Title", 24))))

	result := d.DetectOutline(doc)

	assert.Equal(t, "Report Title", result.Title)
	assert.Empty(t, result.Outline)
}

func TestDetectOutline_BodyHeadingsWithValidation(t *testing.T) {
	d := NewDetector()
	doc := document(
		page(block(textLine("Quarterly Review", 24))),
		page(
			block(textLine("Introduction", 16)),
			proseBlock(10, "some body", "more body", "yet more body"),
			block(textLine("1.2", 16)),
		),
		page(
			block(textLine("Conclusion", 16)),
			proseBlock(10, "closing body", "closing body"),
		),
	)

	result := d.DetectOutline(doc)

	assert.Equal(t, "Quarterly Review", result.Title)
	assert.Equal(t, []Entry{
		{Level: "H1", Text: "Introduction", Page: 2},
		{Level: "H1", Text: "Conclusion", Page: 3},
	}, result.Outline)
}

func TestDetectOutline_FormDocumentHasNoOutline(t *testing.T) {
	d := NewDetector()
	// No style in the body outranks the dominant one, so no hierarchy is
	// learned and the document is treated as a form.
	doc := document(
		page(block(textLine("Application Form", 14))),
		page(
			proseBlock(10, "Name", "Age", "Relationship", "Date"),
			proseBlock(10, "Signature of Government Servant."),
		),
	)

	result := d.DetectOutline(doc)

	assert.Equal(t, "Application Form", result.Title)
	assert.Empty(t, result.Outline)
}

func TestDetectOutline_EmptyBodyShortCircuits(t *testing.T) {
	d := NewDetector()
	// Pages beyond the first carry no text runs at all, so the style
	// table is empty regardless of first-page content.
	doc := document(
		page(
			block(textLine("Cover", 30)),
			block(textLine("Looks Like A Heading", 18)),
		),
		page(),
		page(),
	)

	result := d.DetectOutline(doc)

	assert.Equal(t, "Cover", result.Title)
	assert.Empty(t, result.Outline)
}

func TestDetectOutline_TitleNeverAppearsInOutline(t *testing.T) {
	d := NewDetector()
	// The title's text recurs in the body at a heading style; the
	// verbatim match keeps it out of the outline.
	doc := document(
		page(block(textLine("Design Notes", 16))),
		page(
			block(textLine("Design Notes", 16)),
			block(textLine("Background", 16)),
			proseBlock(10, "body", "body", "body"),
		),
	)

	result := d.DetectOutline(doc)

	for _, entry := range result.Outline {
		assert.NotEqual(t, result.Title, entry.Text)
	}
	assert.Equal(t, []Entry{{Level: "H1", Text: "Background", Page: 2}}, result.Outline)
}

func TestDetectOutline_LevelsAreBounded(t *testing.T) {
	d := NewDetector()
	doc := document(
		page(block(textLine("Big Book", 30))),
		page(
			block(textLine("Part", 22)),
			block(textLine("Chapter", 18)),
			block(textLine("Section", 14)),
			block(textLine("Subsection", 12)),
			proseBlock(10, "body", "body", "body", "body", "body", "body"),
		),
	)

	result := d.DetectOutline(doc)

	seen := map[string]bool{}
	for _, entry := range result.Outline {
		assert.Contains(t, []string{"H1", "H2", "H3"}, entry.Level)
		seen[entry.Level] = true
		assert.GreaterOrEqual(t, entry.Page, 1)
		assert.LessOrEqual(t, entry.Page, len(doc.Pages))
	}
	assert.LessOrEqual(t, len(seen), 3)
	// 12pt outranks the 10pt body but falls outside the top three.
	for _, entry := range result.Outline {
		assert.NotEqual(t, "Subsection", entry.Text)
	}
}

func TestDetectOutline_Deterministic(t *testing.T) {
	d := NewDetector()
	doc := document(
		page(block(textLine("Stable Title", 20))),
		page(
			block(textLine("Alpha", 16)),
			block(boldLine("Beta", 10)),
			proseBlock(10, "body", "body", "body", "body"),
		),
	)

	first := d.DetectOutline(doc)
	second := d.DetectOutline(doc)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestResult_EmptyOutlineMarshalsAsArray(t *testing.T) {
	d := NewDetector()
	result := d.DetectOutline(document(page(block(textLine("Lonely Title", 24)))))

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Lonely Title","outline":[]}`, string(data))
}
