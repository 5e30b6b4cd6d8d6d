package assets

import "errors"

// Sentinel errors for template loading.
var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrTemplateInvalid     = errors.New("template missing content placeholder")
	ErrInvalidTemplateName = errors.New("invalid template name")
	ErrInvalidBasePath     = errors.New("invalid template base path")
	ErrPathTraversal       = errors.New("path traversal detected")
	ErrTemplateRead        = errors.New("failed to read template")
)
