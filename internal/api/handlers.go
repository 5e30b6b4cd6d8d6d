package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Anilcodes01/bookforge"
	"github.com/Anilcodes01/bookforge/internal/fileutil"
)

// Handler holds the HTTP endpoints of the rendering pipeline.
type Handler struct {
	renderer BookRenderer
	debug    bool
}

// NewHandler creates a Handler. With debug enabled, error responses include
// a stack trace; production responses never do.
func NewHandler(renderer BookRenderer, debug bool) *Handler {
	return &Handler{renderer: renderer, debug: debug}
}

// GeneratePreview renders structured book content already held by the
// client. POST /api/generate-preview, JSON body.
func (h *Handler) GeneratePreview(c *gin.Context) {
	var req bookforge.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	artifact, err := h.renderer.GeneratePreview(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, artifact)
}

// UploadWithTemplate renders a raw manuscript file.
// POST /api/upload-with-template, multipart form with "file" and optional
// "style" fields. Unlike the JSON path, an unknown style here is a 400.
func (h *Handler) UploadWithTemplate(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing manuscript file",
			"details": err.Error(),
		})
		return
	}

	style, err := bookforge.ParseStyle(c.DefaultPostForm("style", bookforge.DefaultStyle))
	if err != nil {
		h.renderError(c, err)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".docx", ".md", ".markdown":
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unsupported manuscript format",
			"details": "accepted extensions: .docx, .md, .markdown",
		})
		return
	}

	// The uploaded source is request-scoped like every other temp file.
	janitor := fileutil.NewJanitor()
	defer func() { _ = janitor.Cleanup() }()

	uploadPath := filepath.Join(os.TempDir(), "bookforge-upload-"+uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fileHeader, uploadPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to store uploaded file",
			"details": err.Error(),
		})
		return
	}
	janitor.Track(uploadPath)

	artifact, err := h.renderer.RenderManuscript(c.Request.Context(), bookforge.ManuscriptFile{
		Path:  uploadPath,
		Name:  fileHeader.Filename,
		Style: style,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, artifact)
}

// Healthz is a liveness probe.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// renderError converts a pipeline error into a structured JSON response.
// The operation is all-or-nothing: either a complete URL was returned or
// the caller gets one of these.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := statusForError(err)

	payload := gin.H{
		"error":   messageForStatus(status),
		"details": err.Error(),
	}
	if h.debug {
		payload["stack"] = string(debug.Stack())
	}

	c.JSON(status, payload)
}

// statusForError maps the sentinel taxonomy onto HTTP status codes.
// Validation failures are the caller's fault; everything else is a server
// failure for this request.
func statusForError(err error) int {
	switch {
	case errors.Is(err, bookforge.ErrEmptyBook),
		errors.Is(err, bookforge.ErrInvalidStyle),
		errors.Is(err, bookforge.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageForStatus(status int) string {
	if status == http.StatusBadRequest {
		return "invalid request"
	}
	return "preview generation failed"
}
