package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidHeading(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want bool
	}{
		// Rule 1: blank text
		{name: "empty", text: "", want: false},
		{name: "whitespace_only", text: "   \t ", want: false},

		// Rule 2: numbering and list markers
		{name: "bare_number", text: "1", want: false},
		{name: "numbered_marker", text: "1.", want: false},
		{name: "nested_marker", text: "2.1.3.", want: false},
		{name: "dots_only", text: "....", want: false},
		{name: "serial_number_label", text: "S.No", want: false},
		{name: "serial_number_label_lowercase", text: "s.no", want: false},
		{name: "numbered_heading_with_text", text: "1. Introduction", want: true},

		// Rule 3: form sentences ending in a period
		{name: "five_word_sentence", text: "Please sign below for approval.", want: false},
		{name: "four_word_period_line", text: "Date of joining service.", want: true},
		{name: "long_line_without_period", text: "An unusually long heading of many words", want: true},

		// Rule 4: known form field labels
		{name: "label_name", text: "Name", want: false},
		{name: "label_age_uppercase", text: "AGE", want: false},
		{name: "label_relationship", text: "relationship", want: false},
		{name: "label_date", text: "Date", want: false},
		{name: "label_signature", text: "Signature of Government Servant.", want: false},
		{name: "label_as_prefix_only", text: "Date of Birth", want: true},

		// Ordinary headings
		{name: "plain_heading", text: "Introduction", want: true},
		{name: "title_cased_phrase", text: "Results and Discussion", want: true},
		{name: "unicode_heading", text: "Résumé of Findings", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsValidHeading(tt.text))
		})
	}
}

func TestIsValidHeading_Pure(t *testing.T) {
	d := NewDetector()

	for i := 0; i < 3; i++ {
		assert.True(t, d.IsValidHeading("Introduction"))
		assert.False(t, d.IsValidHeading("2.1"))
	}
}

func TestIsValidHeading_ConfigurableThresholds(t *testing.T) {
	cfg := DefaultDetectionConfig()
	cfg.MaxTrailingPeriodWords = 2
	cfg.FormFieldLabels = []string{"total"}
	d := NewDetectorWithConfig(cfg)

	assert.False(t, d.IsValidHeading("Date of joining service."))
	assert.False(t, d.IsValidHeading("Total"))
	assert.True(t, d.IsValidHeading("Name"))
}
