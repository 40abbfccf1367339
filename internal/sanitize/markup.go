// Package sanitize strips incidental markup from model-produced text.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	reTag    = regexp.MustCompile(`<[^>]+>`)
	reEntity = regexp.MustCompile(`&[a-zA-Z]+;`)
)

// StripMarkup removes tag-like and named-entity substrings and trims the result.
func StripMarkup(text string) string {
	if text == "" {
		return text
	}
	cleaned := reTag.ReplaceAllString(text, "")
	cleaned = reEntity.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// StripMarkupPtr applies StripMarkup to an optional field.
func StripMarkupPtr(text *string) *string {
	if text == nil {
		return nil
	}
	cleaned := StripMarkup(*text)
	return &cleaned
}
