package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Default folder names
const (
	DocumentsDirName = "Documents"
	AppDirName       = "Figurinify"
	FallbackDirName  = "downloads"
)

// CreateDirectoryIfNotExists creates directory and its parents if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dirPath)
	}
	return nil
}

// GetDefaultDownloadDir returns ~/Documents/Figurinify, or ./downloads when
// the home directory cannot be determined
func GetDefaultDownloadDir() string {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		if dir, err := filepath.Abs(filepath.Join(homeDir, DocumentsDirName, AppDirName)); err == nil {
			return dir
		}
	}

	if dir, err := filepath.Abs(FallbackDirName); err == nil {
		return dir
	}
	return FallbackDirName
}
