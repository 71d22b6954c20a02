package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "a", "b", "c")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory with parents
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_File(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CreateDirectoryIfNotExists(filePath); err == nil {
		t.Error("Expected error when path is a regular file")
	}
}

func TestGetDefaultDownloadDir(t *testing.T) {
	dir := GetDefaultDownloadDir()

	if dir == "" {
		t.Fatal("Default download directory is empty")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("Expected absolute path, got: %s", dir)
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		expected := filepath.Join(home, DocumentsDirName, AppDirName)
		if dir != expected {
			t.Errorf("Expected %s, got %s", expected, dir)
		}
	}
}
