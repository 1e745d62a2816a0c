package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_RemovesScripts(t *testing.T) {
	svc := NewMarkdownService()

	out := svc.Sanitize(`printer jammed <script>alert(1)</script><b>again</b>`)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<b>again</b>")
}

func TestStripAll(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "VPN down", svc.StripAll("<em>VPN</em> down"))
}

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("**urgent**\n\n<img src=x onerror=alert(1)>")
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>urgent</strong>")
	assert.NotContains(t, out, "onerror")
}
