package bookforge

import (
	"fmt"
	"strings"

	"github.com/Anilcodes01/bookforge/internal/assets"
)

// Template placeholder tokens. Substitution is plain text replacement; the
// templates are never parsed as HTML.
const (
	TitlePlaceholder   = assets.TitlePlaceholder
	ContentPlaceholder = assets.ContentPlaceholder
)

// documentComposer substitutes the book title and merged body into a style
// template, producing one self-contained HTML document.
type documentComposer interface {
	Compose(template, title, body string) (string, error)
}

// placeholderComposer implements documentComposer via substring replacement.
type placeholderComposer struct{}

// Compose replaces every occurrence of the title and content placeholders.
// The content placeholder is checked before any substitution so a missing
// placeholder is detected even when the title text happens to contain it.
func (placeholderComposer) Compose(template, title, body string) (string, error) {
	if !strings.Contains(template, ContentPlaceholder) {
		return "", fmt.Errorf("%w: template has no %s placeholder", ErrComposition, ContentPlaceholder)
	}

	doc := strings.ReplaceAll(template, TitlePlaceholder, title)
	doc = strings.ReplaceAll(doc, ContentPlaceholder, body)
	return doc, nil
}
