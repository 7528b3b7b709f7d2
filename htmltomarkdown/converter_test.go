package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docdump"
	"github.com/fwojciec/docdump/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		got, err := c.Convert("<h1>Title</h1><p>Some text.</p>")

		require.NoError(t, err)
		assert.Contains(t, got, "# Title")
		assert.Contains(t, got, "Some text.")
	})

	t.Run("converts code blocks to fences", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		got, err := c.Convert("<pre><code>SELECT 1;</code></pre>")

		require.NoError(t, err)
		assert.Contains(t, got, "SELECT 1;")
		assert.Contains(t, got, "```")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		_, err := c.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, docdump.EINVALID, docdump.ErrorCode(err))
	})
}
