package bookforge

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// manuscriptConverter turns an uploaded raw manuscript file into an HTML
// body suitable for the section merger.
type manuscriptConverter interface {
	ToHTML(ctx context.Context, path string) (string, error)
}

// fileManuscriptConverter routes by file extension: DOCX goes through text
// extraction, Markdown through goldmark.
type fileManuscriptConverter struct {
	md goldmark.Markdown
}

// newManuscriptConverter creates a converter with GFM extensions and chroma
// syntax highlighting for fenced code blocks.
func newManuscriptConverter() *fileManuscriptConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
			// WithUnsafe() intentionally NOT used: uploaded manuscripts
			// are untrusted input.
		),
	)
	return &fileManuscriptConverter{md: md}
}

// ToHTML converts the manuscript at path to an HTML fragment.
func (c *fileManuscriptConverter) ToHTML(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".docx":
		return c.convertDocx(path)
	case ".md", ".markdown":
		return c.convertMarkdown(path)
	default:
		return "", fmt.Errorf("%w: %q (accepted: .docx, .md, .markdown)", ErrUnsupportedFormat, ext)
	}
}

// convertDocx extracts the manuscript text and rebuilds it as paragraphs.
func (c *fileManuscriptConverter) convertDocx(path string) (string, error) {
	file, err := os.Open(path) // #nosec G304 -- path is a request-scoped temp file
	if err != nil {
		return "", fmt.Errorf("%w: opening manuscript: %v", ErrConversion, err)
	}
	defer file.Close()

	res, err := docconv.Convert(file, docconv.MimeTypeByExtension(path), true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	return paragraphsToHTML(res.Body), nil
}

// convertMarkdown renders the manuscript through goldmark.
func (c *fileManuscriptConverter) convertMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is a request-scoped temp file
	if err != nil {
		return "", fmt.Errorf("%w: reading manuscript: %v", ErrConversion, err)
	}

	var buf bytes.Buffer
	if err := c.md.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return buf.String(), nil
}

// paragraphsToHTML wraps extracted plain-text lines in escaped <p> elements,
// skipping blank lines.
func paragraphsToHTML(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>\n")
	}
	return b.String()
}
