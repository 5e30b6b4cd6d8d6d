package assets

import (
	"fmt"
	"strings"
)

// ValidateTemplateName rejects names that could escape the template
// directory or produce surprising file lookups.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	return nil
}

// ValidateTemplate checks the mandatory content placeholder. Validation is
// a text-presence check; templates are never parsed as HTML.
func ValidateTemplate(name, content string) error {
	if !strings.Contains(content, ContentPlaceholder) {
		return fmt.Errorf("%w: %q has no %s token", ErrTemplateInvalid, name, ContentPlaceholder)
	}
	return nil
}
