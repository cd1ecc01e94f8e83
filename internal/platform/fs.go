package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateDirectory creates path and any missing parents.
func CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// Move renames src to dst, creating dst's parent directory first.
// It refuses to replace an existing dst.
func Move(src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("moving %s: %w", src, err)
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("moving %s: destination %s already exists", src, dst)
	}
	if err := CreateDirectory(filepath.Dir(dst)); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to %s: %w", src, dst, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
