package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/blog-discussion/internal/render"
)

func TestMarkdown(t *testing.T) {
	t.Run("renders emphasis", func(t *testing.T) {
		out := render.Markdown("hello **world**")
		assert.Contains(t, out, "<strong>world</strong>")
	})

	t.Run("strips scripts", func(t *testing.T) {
		out := render.Markdown("hi <script>alert(1)</script>")
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "alert(1)</script>")
	})

	t.Run("external links open in a new tab", func(t *testing.T) {
		out := render.Markdown("[site](https://example.com)")
		assert.Contains(t, out, `href="https://example.com"`)
		assert.Contains(t, out, `target="_blank"`)
		assert.Contains(t, out, "noreferrer")
	})

	t.Run("drops javascript links", func(t *testing.T) {
		out := render.Markdown("[x](javascript:alert(1))")
		assert.NotContains(t, out, "javascript:")
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, render.Markdown(""))
	})
}
