// Package markdown turns user-supplied ticket text into safe HTML.
// Details are stored sanitized and rendered from markdown on the way out.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type MarkdownService interface {
	// Sanitize strips anything outside the user-content policy.
	Sanitize(htmlContent string) string
	// StripAll removes every tag, for plain-text contexts such as e-mail subjects.
	StripAll(content string) string
	// ToHTMLSanitized renders markdown and sanitizes the result.
	ToHTMLSanitized(markdown string) (string, error)
}

type markdownServiceImpl struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewMarkdownService() MarkdownService {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")

	return &markdownServiceImpl{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *markdownServiceImpl) Sanitize(htmlContent string) string {
	return s.ugc.Sanitize(htmlContent)
}

func (s *markdownServiceImpl) StripAll(content string) string {
	return s.strict.Sanitize(content)
}

func (s *markdownServiceImpl) ToHTMLSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.ugc.Sanitize(buf.String()), nil
}
