// Package browser locates a usable headless-browser executable.
//
// Discovery is an ordered list of strategies evaluated lazily until one
// yields a path: an explicit override, environment variables, a known system
// install for the current platform, and finally the rod-managed Chromium
// build (downloaded on first use). Whichever path wins is then probed for
// execute permission, with one chmod-and-retry repair attempt.
package browser

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-rod/rod/lib/launcher"
)

// Sentinel errors for executable discovery.
var (
	ErrExecutableNotFound      = errors.New("browser executable not found")
	ErrExecutableNotAccessible = errors.New("browser executable not accessible")
)

// Environment variables consulted for an executable override.
const (
	EnvBrowserBin    = "BOOKFORGE_BROWSER_BIN"
	EnvRodBrowserBin = "ROD_BROWSER_BIN"
)

// Strategy is one way of locating a browser executable. Locate returns the
// candidate path and whether the strategy produced one.
type Strategy struct {
	Name   string
	Locate func() (string, bool)
}

// Strategies returns the discovery chain in priority order. The override
// argument (from config/flags) outranks the environment variables, which
// outrank platform discovery, which outranks the managed download.
func Strategies(override string) []Strategy {
	return []Strategy{
		{
			Name: "explicit override",
			Locate: func() (string, bool) {
				return override, override != ""
			},
		},
		{
			Name: "environment variable",
			Locate: func() (string, bool) {
				if bin := os.Getenv(EnvBrowserBin); bin != "" {
					return bin, true
				}
				if bin := os.Getenv(EnvRodBrowserBin); bin != "" {
					return bin, true
				}
				return "", false
			},
		},
		{
			Name: "system install",
			Locate: func() (string, bool) {
				for _, path := range systemInstallPaths() {
					if isExecutableFile(path) {
						return path, true
					}
				}
				return "", false
			},
		},
		{
			Name: "managed browser",
			Locate: func() (string, bool) {
				if bin, has := launcher.LookPath(); has {
					return bin, true
				}
				// Last resort: rod downloads its own Chromium build.
				bin, err := launcher.NewBrowser().Get()
				if err != nil {
					return "", false
				}
				return bin, true
			},
		},
	}
}

// Resolve walks the discovery chain and returns the first usable executable
// path. The winning path is probed for execute permission and repaired once
// before failing.
func Resolve(override string) (string, error) {
	for _, strategy := range Strategies(override) {
		path, ok := strategy.Locate()
		if !ok {
			continue
		}
		if err := EnsureExecutable(path); err != nil {
			return "", fmt.Errorf("%s (%s): %w", strategy.Name, path, err)
		}
		return path, nil
	}
	return "", ErrExecutableNotFound
}

// EnsureExecutable probes path for execute permission; if absent, attempts
// to set it and re-probes. Fails with ErrExecutableNotAccessible if the
// file is still unusable after the repair attempt.
func EnsureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrExecutableNotAccessible, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrExecutableNotAccessible, path)
	}

	if hasExecBit(info.Mode()) {
		return nil
	}

	// Self-heal: managed downloads occasionally land without the exec bit.
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("%w: chmod failed: %v", ErrExecutableNotAccessible, err)
	}

	info, err = os.Stat(path)
	if err != nil || !hasExecBit(info.Mode()) {
		return fmt.Errorf("%w: %s not executable after repair", ErrExecutableNotAccessible, path)
	}
	return nil
}

// systemInstallPaths lists well-known browser install locations for the
// current platform, in preference order.
func systemInstallPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	case "windows":
		return []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
	default:
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium-browser",
			"/usr/bin/chromium",
			"/snap/bin/chromium",
		}
	}
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return hasExecBit(info.Mode())
}

func hasExecBit(mode os.FileMode) bool {
	return mode&0o111 != 0
}
