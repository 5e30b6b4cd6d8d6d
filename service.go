package bookforge

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/Anilcodes01/bookforge/internal/fileutil"
)

// Service orchestrates the assemble-compose-render-publish pipeline.
// Stages execute strictly in order; no stage begins before its predecessor
// completes. One Service owns one browser instance and is safe for
// sequential use; for concurrent requests use ServicePool.
type Service struct {
	cfg             serviceConfig
	templates       templateResolver
	composer        documentComposer
	renderer        pdfRenderer
	converter       manuscriptConverter
	publisher       ArtifactPublisher
	cloudinaryCreds *cloudinaryCredentials
}

// New creates a Service. One of WithCloudinary or WithPublisher is required;
// everything else has defaults.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			navTimeout:   defaultNavTimeout,
			pdfTimeout:   defaultPDFTimeout,
			uploadFolder: defaultUploadFolder,
		},
		composer: placeholderComposer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.templates == nil {
		resolver, err := newTemplateResolver(s.cfg.templateDir)
		if err != nil {
			return nil, err
		}
		s.templates = resolver
	}

	if s.converter == nil {
		s.converter = newManuscriptConverter()
	}

	if s.renderer == nil {
		s.renderer = newRodRenderer(s.cfg.browserBin, s.cfg.navTimeout, s.cfg.pdfTimeout)
	}

	if s.publisher == nil {
		if s.cloudinaryCreds == nil {
			return nil, ErrNoPublisher
		}
		publisher, err := newCloudinaryPublisher(s.cloudinaryCreds)
		if err != nil {
			return nil, err
		}
		s.publisher = publisher
	}

	return s, nil
}

// GeneratePreview runs the full pipeline for structured book content and
// returns the URL of the uploaded PDF. An unrecognized style silently maps
// to the default; a request with no sections at all is rejected before any
// file I/O or process launch.
func (s *Service) GeneratePreview(ctx context.Context, req RenderRequest) (*RenderedArtifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	style := NormalizeStyle(req.Style)

	template, err := s.templates.Resolve(style)
	if err != nil {
		return nil, err
	}

	body := MergeSections(req.FrontMatter, req.Chapters, req.EndMatter)

	title := strings.TrimSpace(req.BookTitle)
	if title == "" {
		title = "Untitled"
	}

	doc, err := s.composer.Compose(template, title, body)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Every temp file is registered the moment it exists, so cleanup covers
	// all failure paths below.
	janitor := fileutil.NewJanitor()
	defer func() {
		if err := janitor.Cleanup(); err != nil {
			log.Printf("bookforge: temp cleanup: %v", err)
		}
	}()

	htmlPath, err := fileutil.WriteTempFile(doc, "html")
	if err != nil {
		return nil, fmt.Errorf("writing composed document: %w", err)
	}
	janitor.Track(htmlPath)

	pdfBytes, err := s.renderer.RenderFromFile(ctx, htmlPath)
	if err != nil {
		return nil, err
	}

	pdfPath, err := fileutil.WriteTempBytes(pdfBytes, "pdf")
	if err != nil {
		return nil, fmt.Errorf("writing rendered PDF: %w", err)
	}
	janitor.Track(pdfPath)

	url, err := s.publisher.Upload(ctx, pdfPath, s.cfg.uploadFolder, title)
	if err != nil {
		return nil, err
	}

	return &RenderedArtifact{URL: url}, nil
}

// RenderManuscript converts an uploaded manuscript file to HTML and runs it
// through the pipeline as a single-chapter book titled after the file.
// Unlike the preview path, the style here is strict: values outside the
// closed set are rejected.
func (s *Service) RenderManuscript(ctx context.Context, m ManuscriptFile) (*RenderedArtifact, error) {
	style, err := ParseStyle(m.Style)
	if err != nil {
		return nil, err
	}

	htmlBody, err := s.converter.ToHTML(ctx, m.Path)
	if err != nil {
		return nil, err
	}

	title := titleFromFilename(m.Name)
	return s.GeneratePreview(ctx, RenderRequest{
		Style:     style,
		BookTitle: title,
		Chapters:  []Chapter{{Name: title, Content: htmlBody}},
	})
}

// Close releases resources (the headless browser).
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}

// titleFromFilename derives a book title from an uploaded file name.
func titleFromFilename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Untitled"
	}
	return base
}
