package bookforge

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// ArtifactPublisher uploads a rendered file to durable object storage and
// returns its public retrieval URL. Implementations must not retry; the
// caller decides whether to resubmit.
type ArtifactPublisher interface {
	Upload(ctx context.Context, localPath, folder, publicIDHint string) (string, error)
}

// cloudinaryCredentials is the credential triple consumed from config.
type cloudinaryCredentials struct {
	CloudName string
	APIKey    string
	APISecret string
}

// cloudinaryPublisher implements ArtifactPublisher over the Cloudinary
// upload API, storing PDFs as raw resources.
type cloudinaryPublisher struct {
	cld *cloudinary.Cloudinary
}

// newCloudinaryPublisher creates a publisher from a credential triple.
func newCloudinaryPublisher(creds *cloudinaryCredentials) (*cloudinaryPublisher, error) {
	cld, err := cloudinary.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return &cloudinaryPublisher{cld: cld}, nil
}

// Upload sends the file at localPath to the store as an opaque binary under
// folder, using a sanitized public id derived from the hint.
func (p *cloudinaryPublisher) Upload(ctx context.Context, localPath, folder, publicIDHint string) (string, error) {
	file, err := os.Open(localPath) // #nosec G304 -- path is a pipeline-created temp file
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", ErrUpload, localPath, err)
	}
	defer file.Close()

	resp, err := p.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     SanitizePublicID(publicIDHint),
		ResourceType: "raw",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrUpload, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("%w: store returned no URL", ErrUpload)
	}

	return resp.SecureURL, nil
}

// Compile-time interface check.
var _ ArtifactPublisher = (*cloudinaryPublisher)(nil)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SanitizePublicID derives a storage identifier from a free-form hint:
// runs of non-alphanumeric characters collapse to single dashes, and a
// short random suffix keeps concurrent uploads of the same title distinct.
func SanitizePublicID(hint string) string {
	cleaned := nonAlphanumeric.ReplaceAllString(hint, "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "book"
	}
	return cleaned + "-" + uuid.NewString()[:8]
}
