package config

import (
	"sync"
)

// Settings holds choices the user makes while the app runs. Nothing is
// persisted between runs.
type Settings struct {
	mu          sync.RWMutex
	downloadDir string
}

// NewSettings creates a new settings holder with the given default directory
func NewSettings(defaultDownloadDir string) *Settings {
	return &Settings{downloadDir: defaultDownloadDir}
}

// GetDownloadDirectory returns the current download directory
func (s *Settings) GetDownloadDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.downloadDir
}

// SetDownloadDirectory sets the download directory; empty values are ignored
func (s *Settings) SetDownloadDirectory(dir string) {
	if dir == "" {
		return
	}
	s.mu.Lock()
	s.downloadDir = dir
	s.mu.Unlock()
}
