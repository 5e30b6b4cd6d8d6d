package assets

import "errors"

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom directory is configured, it is tried first; templates not
// found there fall back to the embedded set.
type Resolver struct {
	custom   TemplateLoader // nil if no custom directory configured
	embedded TemplateLoader
}

// NewResolver creates a Resolver. If customDir is empty, only embedded
// templates are used. Returns an error if customDir is set but invalid.
func NewResolver(customDir string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a style template, trying the custom loader first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found"; validation and I/O errors surface.
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
