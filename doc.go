// Package bookforge assembles structured book manuscripts into styled HTML
// documents and renders them to PDF using headless Chrome.
//
// # Quick Start
//
// Create a service, generate a preview, and close when done:
//
//	svc, err := bookforge.New(
//	    bookforge.WithCloudinary(cloudName, apiKey, apiSecret),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	artifact, err := svc.GeneratePreview(ctx, bookforge.RenderRequest{
//	    BookTitle: "My Book",
//	    Chapters: []bookforge.Chapter{
//	        {Name: "Chapter One", Content: "<p>It begins.</p>"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(artifact.URL)
//
// # Pipeline
//
// A render request moves through these stages in strict order:
//
//  1. Input validation (a book with no sections at all is rejected)
//  2. Section merging (front matter, chapters with parts, end matter
//     concatenated into one linear HTML body with page-break markers)
//  3. Template resolution (classic, minimalist, or modern style)
//  4. Document composition (title and body substituted into the template)
//  5. PDF rendering via headless Chrome (go-rod)
//  6. Upload of the rendered PDF to Cloudinary
//
// Every temporary file created along the way is tracked and removed when the
// request finishes, on success and failure alike.
//
// # Manuscript Uploads
//
// RenderManuscript accepts a raw manuscript file (.docx or Markdown),
// converts it to HTML, and runs it through the same pipeline as a single
// chapter.
//
// # Parallel Requests
//
// Each Service owns one browser instance. For concurrent HTTP traffic, use
// ServicePool to manage multiple instances:
//
//	pool := bookforge.NewServicePool(4, factory)
//	defer pool.Close()
//
//	svc, err := pool.Acquire()
//	defer pool.Release(svc)
//
// # Browser Requirements
//
// PDF rendering requires Chrome/Chromium. The renderer tries, in order: the
// BOOKFORGE_BROWSER_BIN (or ROD_BROWSER_BIN) environment override, a known
// system install for the current platform, and finally the rod-managed
// Chromium build, which is downloaded on first use. Binaries that have lost
// their execute bit are repaired with a chmod before giving up.
package bookforge
