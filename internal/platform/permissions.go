package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// AddPermissions ORs bits into the current permissions of path,
// e.g. AddPermissions(p, 0o100) makes p executable by its owner.
func AddPermissions(path string, bits os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return Chmod(path, info.Mode().Perm()|bits.Perm())
}
