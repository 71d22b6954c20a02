package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the entire application configuration
type Config struct {
	Viewer   ViewerConfig   `mapstructure:"viewer"`
	Resolver ResolverConfig `mapstructure:"resolver"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Download DownloadConfig `mapstructure:"download"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ViewerConfig describes the viewer web application opened after a download
type ViewerConfig struct {
	Name    string `mapstructure:"name"`
	BaseURL string `mapstructure:"base_url"`
}

// ResolverConfig contains link resolution settings
type ResolverConfig struct {
	ModelPageTemplate string `mapstructure:"model_page_template"` // fmt template, %s is the model id
	Extension         string `mapstructure:"extension"`           // without the leading dot
}

// HTTPConfig contains settings shared by page fetches and file downloads
type HTTPConfig struct {
	UserAgent       string        `mapstructure:"user_agent"`
	PageTimeout     time.Duration `mapstructure:"page_timeout"`
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
	MaxRedirects    int           `mapstructure:"max_redirects"`
	MaxPageBytes    int64         `mapstructure:"max_page_bytes"`
}

// DownloadConfig contains file download settings
type DownloadConfig struct {
	ChunkSize int `mapstructure:"chunk_size"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default values
const (
	DefaultViewerName        = "Figurinify"
	DefaultViewerURL         = "https://andytwoods.github.io/Figurinify/"
	DefaultModelPageTemplate = "https://www.meshy.ai/3d-models/%s"
	DefaultExtension         = "glb"
	DefaultUserAgent         = "Mozilla/5.0 (compatible; GLB-Downloader/1.0)"
	DefaultPageTimeout       = 30 * time.Second
	DefaultDownloadTimeout   = 60 * time.Second
	DefaultMaxRedirects      = 10
	DefaultMaxPageBytes      = 16 << 20
	DefaultChunkSize         = 512 << 10
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "console"
)

// Load builds the configuration from built-in defaults. Keys present in
// overrides replace the defaults; main passes nil.
func Load(overrides map[string]any) (*Config, error) {
	v := viper.New()

	v.SetDefault("viewer.name", DefaultViewerName)
	v.SetDefault("viewer.base_url", DefaultViewerURL)
	v.SetDefault("resolver.model_page_template", DefaultModelPageTemplate)
	v.SetDefault("resolver.extension", DefaultExtension)
	v.SetDefault("http.user_agent", DefaultUserAgent)
	v.SetDefault("http.page_timeout", DefaultPageTimeout.String())
	v.SetDefault("http.download_timeout", DefaultDownloadTimeout.String())
	v.SetDefault("http.max_redirects", DefaultMaxRedirects)
	v.SetDefault("http.max_page_bytes", DefaultMaxPageBytes)
	v.SetDefault("download.chunk_size", DefaultChunkSize)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	for key, value := range overrides {
		v.Set(key, value)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Viewer.Name) == "" {
		return fmt.Errorf("viewer.name is required")
	}

	u, err := url.Parse(c.Viewer.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("viewer.base_url must be an absolute http(s) URL: %q", c.Viewer.BaseURL)
	}

	if strings.Count(c.Resolver.ModelPageTemplate, "%s") != 1 {
		return fmt.Errorf("resolver.model_page_template must contain exactly one %%s: %q", c.Resolver.ModelPageTemplate)
	}

	c.Resolver.Extension = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Resolver.Extension)), ".")
	if c.Resolver.Extension == "" {
		return fmt.Errorf("resolver.extension is required")
	}

	if c.HTTP.PageTimeout <= 0 {
		return fmt.Errorf("http.page_timeout must be positive")
	}
	if c.HTTP.DownloadTimeout <= 0 {
		return fmt.Errorf("http.download_timeout must be positive")
	}
	if c.HTTP.MaxRedirects < 0 {
		return fmt.Errorf("http.max_redirects must not be negative")
	}
	if c.HTTP.MaxPageBytes <= 0 {
		return fmt.Errorf("http.max_page_bytes must be positive")
	}
	if c.Download.ChunkSize <= 0 {
		return fmt.Errorf("download.chunk_size must be positive")
	}

	return nil
}
