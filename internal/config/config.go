// Package config loads server configuration from an optional YAML file,
// a .env file, and environment variables. Environment values win over the
// file so deployments can override individual settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Anilcodes01/bookforge/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound      = errors.New("config file not found")
	ErrConfigParse         = errors.New("failed to parse config")
	ErrMissingCloudinary   = errors.New("cloudinary credentials not configured")
	ErrInvalidWorkerCount  = errors.New("worker count must be >= 0")
	ErrInvalidTimeoutValue = errors.New("timeout must be positive")
)

// Config holds all server configuration.
type Config struct {
	Port  string `yaml:"port"`
	Debug bool   `yaml:"debug"`

	// Workers is the renderer pool size; 0 = derive from GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Cloudinary credential triple for the artifact publisher.
	CloudinaryCloudName string `yaml:"cloudinaryCloudName"`
	CloudinaryAPIKey    string `yaml:"cloudinaryApiKey"`
	CloudinaryAPISecret string `yaml:"cloudinaryApiSecret"`

	// UploadFolder is the object-store folder for generated PDFs.
	UploadFolder string `yaml:"uploadFolder"`

	// BrowserBin is an optional explicit renderer executable path.
	BrowserBin string `yaml:"browserBin"`

	// TemplateDir is an optional directory of custom style templates.
	TemplateDir string `yaml:"templateDir"`

	// Stage timeouts in seconds.
	NavTimeoutSec int `yaml:"navTimeoutSec"`
	PDFTimeoutSec int `yaml:"pdfTimeoutSec"`
}

// DefaultConfig returns a config with neutral defaults and no credentials.
func DefaultConfig() *Config {
	return &Config{
		Port:          "8080",
		Debug:         false,
		Workers:       0,
		UploadFolder:  "book-previews",
		NavTimeoutSec: 30,
		PDFTimeoutSec: 60,
	}
}

// Load builds the configuration: defaults, then the YAML file at filePath
// (skipped when empty), then .env, then environment variables.
func Load(filePath string) (*Config, error) {
	cfg := DefaultConfig()

	if filePath != "" {
		data, err := os.ReadFile(filePath) // #nosec G304 -- config path is operator-provided
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, filePath)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	// .env is optional; missing file is not an error.
	_ = godotenv.Load()

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Debug = getEnvBool("DEBUG_MODE", cfg.Debug)
	cfg.Workers = getEnvInt("WORKERS", cfg.Workers)
	cfg.CloudinaryCloudName = getEnv("CLOUDINARY_CLOUD_NAME", cfg.CloudinaryCloudName)
	cfg.CloudinaryAPIKey = getEnv("CLOUDINARY_API_KEY", cfg.CloudinaryAPIKey)
	cfg.CloudinaryAPISecret = getEnv("CLOUDINARY_API_SECRET", cfg.CloudinaryAPISecret)
	cfg.UploadFolder = getEnv("UPLOAD_FOLDER", cfg.UploadFolder)
	cfg.BrowserBin = getEnv("BOOKFORGE_BROWSER_BIN", cfg.BrowserBin)
	cfg.TemplateDir = getEnv("TEMPLATE_DIR", cfg.TemplateDir)
	cfg.NavTimeoutSec = getEnvInt("NAV_TIMEOUT_SEC", cfg.NavTimeoutSec)
	cfg.PDFTimeoutSec = getEnvInt("PDF_TIMEOUT_SEC", cfg.PDFTimeoutSec)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for usable values.
func (c *Config) Validate() error {
	if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
		return ErrMissingCloudinary
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, c.Workers)
	}
	if c.NavTimeoutSec <= 0 || c.PDFTimeoutSec <= 0 {
		return fmt.Errorf("%w: nav=%d pdf=%d", ErrInvalidTimeoutValue, c.NavTimeoutSec, c.PDFTimeoutSec)
	}
	return nil
}

// getEnv returns the environment value for key, or fallback when unset.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvBool parses a boolean environment value, or returns fallback.
func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvInt parses an integer environment value, or returns fallback.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
