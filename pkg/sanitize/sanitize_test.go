package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	cleaner := NewCleaner()

	t.Run("Plain Text Passes Through", func(t *testing.T) {
		assert.Equal(t, "ICU experience required", cleaner.Clean("ICU experience required"))
	})

	t.Run("Strips Script Tags", func(t *testing.T) {
		cleaned := cleaner.Clean(`Night shift <script>alert("x")</script>differential`)
		assert.NotContains(t, cleaned, "<script>")
		assert.NotContains(t, cleaned, "alert")
		assert.Contains(t, cleaned, "Night shift")
	})

	t.Run("Strips Markup Keeps Text", func(t *testing.T) {
		assert.Equal(t, "BLS certification", cleaner.Clean("<b>BLS</b> certification"))
	})

	t.Run("Trims Whitespace", func(t *testing.T) {
		assert.Equal(t, "text", cleaner.Clean("  text  "))
	})
}

func TestCleanPtr(t *testing.T) {
	cleaner := NewCleaner()

	t.Run("Nil Stays Nil", func(t *testing.T) {
		assert.Nil(t, cleaner.CleanPtr(nil))
	})

	t.Run("Empty Result Becomes Nil", func(t *testing.T) {
		empty := "<script>only markup</script>"
		cleaned := cleaner.CleanPtr(&empty)
		assert.Nil(t, cleaned)
	})

	t.Run("Text Preserved", func(t *testing.T) {
		text := "Must hold active RN license"
		cleaned := cleaner.CleanPtr(&text)
		assert.NotNil(t, cleaned)
		assert.Equal(t, text, *cleaned)
	})
}
