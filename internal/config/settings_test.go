package config

import (
	"sync"
	"testing"
)

func TestNewSettings(t *testing.T) {
	settings := NewSettings("/home/u/Documents/Figurinify")

	if settings.GetDownloadDirectory() != "/home/u/Documents/Figurinify" {
		t.Errorf("Expected default directory, got %s", settings.GetDownloadDirectory())
	}
}

func TestDownloadDirectory(t *testing.T) {
	settings := NewSettings("/default")

	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}

	// Empty value keeps the previous directory
	settings.SetDownloadDirectory("")
	if settings.GetDownloadDirectory() != customDir {
		t.Errorf("Empty directory should be ignored, got %s", settings.GetDownloadDirectory())
	}
}

func TestDownloadDirectory_Concurrent(t *testing.T) {
	settings := NewSettings("/default")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			settings.SetDownloadDirectory("/other")
		}()
		go func() {
			defer wg.Done()
			_ = settings.GetDownloadDirectory()
		}()
	}
	wg.Wait()

	if settings.GetDownloadDirectory() != "/other" {
		t.Errorf("Expected /other, got %s", settings.GetDownloadDirectory())
	}
}
