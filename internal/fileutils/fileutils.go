// Package fileutils provides the file operations behind the expense store.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilePerm is the mode of files written by WriteFileAtomic.
const DefaultFilePerm os.FileMode = 0644

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// WriteFileAtomic replaces filePath with data. The data is written to a
// temporary file in the same directory and renamed over filePath, so a reader
// sees either the old or the new content, never a partial write.
// An existing file keeps its permission bits; perm applies to new files only.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) (err error) {
	if info, statErr := os.Stat(filePath); statErr == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err = os.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
