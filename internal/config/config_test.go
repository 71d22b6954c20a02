package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "Figurinify", cfg.Viewer.Name)
	assert.Equal(t, DefaultViewerURL, cfg.Viewer.BaseURL)
	assert.Equal(t, DefaultModelPageTemplate, cfg.Resolver.ModelPageTemplate)
	assert.Equal(t, "glb", cfg.Resolver.Extension)
	assert.Equal(t, DefaultUserAgent, cfg.HTTP.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.HTTP.PageTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.DownloadTimeout)
	assert.Equal(t, 10, cfg.HTTP.MaxRedirects)
	assert.Equal(t, int64(16<<20), cfg.HTTP.MaxPageBytes)
	assert.Equal(t, 512*1024, cfg.Download.ChunkSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(map[string]any{
		"viewer.base_url":    "http://127.0.0.1:9000/viewer/",
		"http.page_timeout":  "2s",
		"resolver.extension": ".GLB",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000/viewer/", cfg.Viewer.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.HTTP.PageTimeout)
	assert.Equal(t, "glb", cfg.Resolver.Extension, "extension is lower-cased and stripped of its dot")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"empty viewer name", map[string]any{"viewer.name": ""}},
		{"relative viewer url", map[string]any{"viewer.base_url": "/viewer"}},
		{"template without placeholder", map[string]any{"resolver.model_page_template": "https://www.meshy.ai/"}},
		{"empty extension", map[string]any{"resolver.extension": " "}},
		{"zero page timeout", map[string]any{"http.page_timeout": "0s"}},
		{"zero download timeout", map[string]any{"http.download_timeout": "0s"}},
		{"negative redirects", map[string]any{"http.max_redirects": -1}},
		{"zero chunk size", map[string]any{"download.chunk_size": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.overrides)
			assert.Error(t, err)
		})
	}
}
