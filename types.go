package bookforge

import (
	"fmt"
	"strings"
	"time"
)

// Style constants name the built-in templates.
const (
	StyleClassic    = "classic"
	StyleMinimalist = "minimalist"
	StyleModern     = "modern"

	// DefaultStyle is used when a request omits the style.
	DefaultStyle = StyleClassic
)

// ManuscriptSection is one front-matter or end-matter unit. Content is
// author-supplied rich HTML and is passed through opaquely.
type ManuscriptSection struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Part is a subdivision of a chapter. A part always belongs to exactly one
// chapter and is never rendered outside it.
type Part struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Chapter owns an ordered sequence of parts.
type Chapter struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Parts   []Part `json:"parts"`
}

// RenderRequest carries everything needed to produce one PDF preview.
// It is constructed fresh per request and never persisted.
type RenderRequest struct {
	Style       string              `json:"style"`
	BookTitle   string              `json:"bookTitle"`
	FrontMatter []ManuscriptSection `json:"frontMatter"`
	Chapters    []Chapter           `json:"chapters"`
	EndMatter   []ManuscriptSection `json:"endMatter"`
}

// Validate rejects requests with nothing to render. Section ordering is
// caller-owned; no further shape checks are needed here.
func (r *RenderRequest) Validate() error {
	if len(r.FrontMatter) == 0 && len(r.Chapters) == 0 && len(r.EndMatter) == 0 {
		return ErrEmptyBook
	}
	return nil
}

// ManuscriptFile describes an uploaded raw manuscript to be converted and
// rendered as a single-chapter book.
type ManuscriptFile struct {
	Path  string // local path of the uploaded file
	Name  string // original file name, used to derive the book title
	Style string // must be a member of the closed style set
}

// RenderedArtifact is the durable output of the pipeline: the retrieval URL
// of the uploaded PDF.
type RenderedArtifact struct {
	URL string `json:"pdfUrl"`
}

// ValidStyle reports whether name is a member of the closed style set.
func ValidStyle(name string) bool {
	switch strings.ToLower(name) {
	case StyleClassic, StyleMinimalist, StyleModern:
		return true
	}
	return false
}

// NormalizeStyle maps any input to a member of the closed style set.
// Unknown or empty values fall back to DefaultStyle; recognized values are
// lowercased. Used by the JSON preview path, which is lenient by design.
func NormalizeStyle(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if ValidStyle(lower) {
		return lower
	}
	return DefaultStyle
}

// ParseStyle validates name against the closed style set. Empty input maps
// to DefaultStyle; anything else unrecognized is an error. Used by the
// upload path, where the style comes straight from a user form.
func ParseStyle(name string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return DefaultStyle, nil
	}
	if !ValidStyle(lower) {
		return "", fmt.Errorf("%w: %q (must be classic, minimalist, or modern)", ErrInvalidStyle, name)
	}
	return lower, nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	navTimeout   time.Duration
	pdfTimeout   time.Duration
	browserBin   string
	templateDir  string
	uploadFolder string
}

// Default timeouts for the two renderer stages. Navigation is generous
// because manuscripts can embed remote images.
const (
	defaultNavTimeout = 30 * time.Second
	defaultPDFTimeout = 60 * time.Second
)

// defaultUploadFolder is the object-store folder for generated previews.
const defaultUploadFolder = "book-previews"

// WithTimeouts sets the navigation and PDF-capture timeouts.
// Panics if either is <= 0 (programmer error, similar to time.NewTicker).
func WithTimeouts(nav, pdf time.Duration) Option {
	if nav <= 0 || pdf <= 0 {
		panic("bookforge: WithTimeouts durations must be positive")
	}
	return func(s *Service) {
		s.cfg.navTimeout = nav
		s.cfg.pdfTimeout = pdf
	}
}

// WithBrowserBin sets an explicit browser executable path, taking priority
// over environment variables and platform discovery.
func WithBrowserBin(path string) Option {
	return func(s *Service) {
		s.cfg.browserBin = path
	}
}

// WithTemplateDir sets a directory of custom style templates. Templates
// found there take precedence over the embedded ones.
func WithTemplateDir(dir string) Option {
	return func(s *Service) {
		s.cfg.templateDir = dir
	}
}

// WithUploadFolder sets the object-store folder for rendered PDFs.
func WithUploadFolder(folder string) Option {
	return func(s *Service) {
		s.cfg.uploadFolder = folder
	}
}

// WithCloudinary configures the artifact publisher from a Cloudinary
// credential triple. One of WithCloudinary or WithPublisher is required.
func WithCloudinary(cloudName, apiKey, apiSecret string) Option {
	return func(s *Service) {
		s.cloudinaryCreds = &cloudinaryCredentials{
			CloudName: cloudName,
			APIKey:    apiKey,
			APISecret: apiSecret,
		}
	}
}

// WithPublisher injects a custom ArtifactPublisher, replacing Cloudinary.
func WithPublisher(p ArtifactPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}
