package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrSiteBaseURLRequired = errors.New("localpages config: site base url is required")
var ErrSiteBaseURLInvalid = errors.New("localpages config: site base url must be http or https")
var ErrStorageProviderUnknown = errors.New("localpages config: storage provider is invalid")
var ErrTemplatesDirRequired = errors.New("localpages config: template pack directory is required when templates are enabled")
var ErrLoggingProviderRequired = errors.New("localpages config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("localpages config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("localpages config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("localpages config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled   bool
	Site      SiteConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Templates TemplatesConfig
	Features  Features
	Commands  CommandsConfig
	Logging   LoggingConfig
}

// SiteConfig identifies the public site the generated pages belong to.
type SiteConfig struct {
	BaseURL  string
	SiteName string
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// TemplatesConfig points the content engine at an on-disk template pack.
// When disabled the built-in section templates are used.
type TemplatesConfig struct {
	Enabled bool
	Dir     string
}

// Features toggles module functionality.
type Features struct {
	Sitemap   bool
	Commands  bool
	Logger    bool
	Templates bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an embedded setup.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Site: SiteConfig{
			BaseURL:  "http://localhost:8080",
			SiteName: "Local Services",
		},
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Templates: TemplatesConfig{
			Dir: "templates",
		},
		Features: Features{
			Sitemap: true,
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	base := strings.TrimSpace(cfg.Site.BaseURL)
	if base == "" {
		return ErrSiteBaseURLRequired
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return fmt.Errorf("%w: %s", ErrSiteBaseURLInvalid, base)
	}
	if provider := normalizeProvider(cfg.Storage.Provider); provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Features.Templates || cfg.Templates.Enabled {
		if strings.TrimSpace(cfg.Templates.Dir) == "" {
			return ErrTemplatesDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case "bun", "memory":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
