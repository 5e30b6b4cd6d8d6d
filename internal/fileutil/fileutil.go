// Package fileutil provides temporary-file helpers and the request-scoped
// janitor that guarantees their removal.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteTempFile creates a uniquely named temporary file with the given text
// content and extension. Returns the file path.
func WriteTempFile(content, extension string) (string, error) {
	return WriteTempBytes([]byte(content), extension)
}

// WriteTempBytes creates a uniquely named temporary file with the given
// binary content and extension. Unique names keep concurrent requests from
// colliding.
func WriteTempBytes(content []byte, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", "bookforge-*."+extension)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	path := tmpFile.Name()

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
