package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner strips unsafe markup from facility-submitted free text before it
// is persisted (position descriptions, requirements, facility descriptions).
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a cleaner that strips all HTML, keeping plain text
func NewCleaner() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// Clean sanitizes a free-text field and trims surrounding whitespace
func (c *Cleaner) Clean(text string) string {
	cleaned := c.policy.Sanitize(text)
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
	return strings.TrimSpace(cleaned)
}

// CleanPtr sanitizes an optional field, mapping empty results to nil
func (c *Cleaner) CleanPtr(text *string) *string {
	if text == nil {
		return nil
	}
	cleaned := c.Clean(*text)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
