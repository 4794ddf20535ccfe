package outline

import (
	"regexp"
	"strings"
)

// Matches bare numbering such as "1.", "2.1.3", and the "S.No" column
// label that shares heading typography in tabular forms.
var listMarkerPattern = regexp.MustCompile(`(?i)^(?:[\d.]+|S\.No)$`)

// IsValidHeading reports whether a line of text is plausible heading
// content. It is applied only to lines whose style already matches a
// learned heading level; these rules separate true section headings from
// form fields and list markers that share heading-like typography.
// Rules, in order:
//
//  1. blank text is rejected
//  2. bare numbering and the "S.No" marker are rejected
//  3. period-terminated text longer than MaxTrailingPeriodWords words is
//     rejected as a form sentence
//  4. known form field labels are rejected on exact case-insensitive match
func (d *Detector) IsValidHeading(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	if listMarkerPattern.MatchString(text) {
		return false
	}

	if strings.HasSuffix(text, ".") && len(strings.Fields(text)) > d.config.MaxTrailingPeriodWords {
		return false
	}

	lower := strings.ToLower(text)
	for _, label := range d.config.FormFieldLabels {
		if lower == label {
			return false
		}
	}

	return true
}
