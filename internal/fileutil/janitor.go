package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"sync"
)

// Janitor tracks temporary files created during one request and removes
// each exactly once when the request ends, regardless of which stage failed.
// A file that is already gone counts as successfully removed.
type Janitor struct {
	mu      sync.Mutex
	paths   []string
	cleaned bool
}

// NewJanitor creates an empty Janitor.
func NewJanitor() *Janitor {
	return &Janitor{}
}

// Track registers a path for removal at cleanup time. Register each temp
// file immediately after creating it, not at the end of the request.
func (j *Janitor) Track(path string) {
	if path == "" {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cleaned {
		// Late registration after cleanup: remove immediately rather
		// than leak.
		_ = os.Remove(path)
		return
	}
	j.paths = append(j.paths, path)
}

// Cleanup removes every tracked file. Safe to call more than once; only the
// first call does work. Returns the joined removal errors, excluding
// not-exist.
func (j *Janitor) Cleanup() error {
	j.mu.Lock()
	if j.cleaned {
		j.mu.Unlock()
		return nil
	}
	j.cleaned = true
	paths := j.paths
	j.paths = nil
	j.mu.Unlock()

	var errs []error
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Tracked returns the number of paths currently registered.
func (j *Janitor) Tracked() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.paths)
}
