package bookforge

import "errors"

// Sentinel errors for pipeline operations.
var (
	// Input validation errors.
	ErrEmptyBook         = errors.New("book has no front matter, chapters, or end matter")
	ErrInvalidStyle      = errors.New("invalid style")
	ErrUnsupportedFormat = errors.New("unsupported manuscript format")

	// Template errors.
	ErrTemplateNotFound = errors.New("style template not found")
	ErrTemplateInvalid  = errors.New("style template missing required placeholder")
	ErrComposition      = errors.New("document composition failed")

	// Manuscript conversion errors.
	ErrConversion = errors.New("manuscript conversion failed")

	// Renderer errors.
	ErrExecutableNotFound      = errors.New("browser executable not found")
	ErrExecutableNotAccessible = errors.New("browser executable not accessible")
	ErrBrowserConnect          = errors.New("failed to connect to browser")
	ErrPageCreate              = errors.New("failed to create browser page")
	ErrRenderTimeout           = errors.New("page render timed out")
	ErrPDFGeneration           = errors.New("PDF generation failed")

	// Publishing errors.
	ErrUpload      = errors.New("artifact upload failed")
	ErrNoPublisher = errors.New("no artifact publisher configured")

	// Pool errors.
	ErrPoolClosed = errors.New("service pool is closed")
)
