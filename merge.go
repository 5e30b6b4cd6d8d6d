package bookforge

import (
	"html"
	"strings"
)

// pageBreakMarker forces pagination in the rendered PDF. Chrome honors the
// CSS page-break property during PrintToPDF.
const pageBreakMarker = `<div style="page-break-after: always;"></div>`

// emptyContentPlaceholder is rendered in place of a section or part whose
// content is empty, so the author sees the gap in the preview.
const emptyContentPlaceholder = `<p><em>No content added yet.</em></p>`

// MergeSections concatenates the ordered manuscript sections into one linear
// HTML body: front matter, then chapters with their nested parts, then end
// matter. Input order is preserved verbatim; nothing is reordered, dropped,
// or deduplicated.
//
// Page-break placement rules:
//   - after every front-matter section, except the last when nothing follows
//   - after every chapter block, except the last chapter when there is no
//     end matter
//   - after every end-matter section except the last
//
// Empty section and part content renders a visible placeholder; empty
// chapter content renders nothing.
func MergeSections(frontMatter []ManuscriptSection, chapters []Chapter, endMatter []ManuscriptSection) string {
	var b strings.Builder

	followsFront := len(chapters) > 0 || len(endMatter) > 0
	for i, section := range frontMatter {
		writeHeading(&b, "h1", "front-matter-heading", section.Name)
		writeContentOrPlaceholder(&b, section.Content)
		if i < len(frontMatter)-1 || followsFront {
			b.WriteString(pageBreakMarker)
		}
	}

	for i, chapter := range chapters {
		writeHeading(&b, "h1", "chapter-heading", chapter.Name)
		if strings.TrimSpace(chapter.Content) != "" {
			b.WriteString(chapter.Content)
		}
		for _, part := range chapter.Parts {
			writeHeading(&b, "h2", "part-heading", part.Name)
			writeContentOrPlaceholder(&b, part.Content)
		}
		lastChapter := i == len(chapters)-1
		if !lastChapter || len(endMatter) > 0 {
			b.WriteString(pageBreakMarker)
		}
	}

	for i, section := range endMatter {
		writeHeading(&b, "h1", "end-matter-heading", section.Name)
		writeContentOrPlaceholder(&b, section.Content)
		if i < len(endMatter)-1 {
			b.WriteString(pageBreakMarker)
		}
	}

	return b.String()
}

// writeHeading emits a heading element with the section name escaped.
// Section content is trusted author HTML; names are plain text.
func writeHeading(b *strings.Builder, tag, class, name string) {
	b.WriteString("<" + tag + ` class="` + class + `">`)
	b.WriteString(html.EscapeString(name))
	b.WriteString("</" + tag + ">")
}

// writeContentOrPlaceholder emits the content, or the placeholder when the
// content is empty or whitespace-only.
func writeContentOrPlaceholder(b *strings.Builder, content string) {
	if strings.TrimSpace(content) == "" {
		b.WriteString(emptyContentPlaceholder)
		return
	}
	b.WriteString(content)
}
