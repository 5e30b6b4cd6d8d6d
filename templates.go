package bookforge

import (
	"errors"
	"fmt"

	"github.com/Anilcodes01/bookforge/internal/assets"
)

// templateResolver loads the raw text of a style template by name.
type templateResolver interface {
	Resolve(style string) (string, error)
}

// assetTemplateResolver wraps the internal assets resolver and maps its
// errors to the public sentinels.
type assetTemplateResolver struct {
	resolver *assets.Resolver
}

// newTemplateResolver creates a resolver over the embedded templates, with
// customDir (if non-empty) taking precedence.
func newTemplateResolver(customDir string) (*assetTemplateResolver, error) {
	resolver, err := assets.NewResolver(customDir)
	if err != nil {
		return nil, convertTemplateError(err)
	}
	return &assetTemplateResolver{resolver: resolver}, nil
}

func (r *assetTemplateResolver) Resolve(style string) (string, error) {
	content, err := r.resolver.LoadTemplate(style)
	if err != nil {
		return "", convertTemplateError(err)
	}
	return content, nil
}

// convertTemplateError maps internal asset errors to public errors.
// Internal sentinels are not exposed since they live in internal/ packages.
func convertTemplateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrTemplateNotFound),
		errors.Is(err, assets.ErrInvalidTemplateName):
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrTemplateInvalid):
		return fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal),
		errors.Is(err, assets.ErrTemplateRead):
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	default:
		return err
	}
}
