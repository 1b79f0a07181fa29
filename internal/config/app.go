package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

const (
	EnvAppBasePath    = "APP_BASE_PATH"
	EnvAppMaxFormSize = "APP_MAX_FORM_SIZE"
)

// AppConfig configures the web application module.
type AppConfig struct {
	// BasePath is the mount prefix: "/" or a single segment like "/app".
	BasePath string `toml:"base_path"`

	// MaxFormSize bounds submitted form bodies, in human units ("64KB").
	MaxFormSize    string `toml:"max_form_size"`
	maxFormSizeVal int64
}

// MaxFormSizeBytes returns the parsed MaxFormSize. Valid after Finalize.
func (c *AppConfig) MaxFormSizeBytes() int64 {
	return c.maxFormSizeVal
}

func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxFormSize != "" {
		c.MaxFormSize = overlay.MaxFormSize
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.MaxFormSize == "" {
		c.MaxFormSize = "64KB"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppMaxFormSize); v != "" {
		c.MaxFormSize = v
	}
}

func (c *AppConfig) validate() error {
	if c.BasePath != "/" && (!strings.HasPrefix(c.BasePath, "/") || strings.Count(c.BasePath, "/") != 1) {
		return fmt.Errorf("invalid base_path %q: must be / or a single segment", c.BasePath)
	}

	size, err := units.FromHumanSize(c.MaxFormSize)
	if err != nil {
		return fmt.Errorf("invalid max_form_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_form_size must be positive")
	}
	c.maxFormSizeVal = size
	return nil
}
