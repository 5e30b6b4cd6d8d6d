package assets

// Placeholder tokens every style template must work with. The content
// placeholder is mandatory; the title placeholder is optional per template.
const (
	TitlePlaceholder   = "{{BOOK_TITLE}}"
	ContentPlaceholder = "{{BOOK_CONTENT}}"
)

// TemplateLoader defines the contract for loading style templates by name.
// Implementations may load from embedded assets, filesystem, S3, etc.
type TemplateLoader interface {
	// LoadTemplate loads a style template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist and
	// ErrTemplateInvalid if it lacks the content placeholder.
	LoadTemplate(name string) (string, error)
}
