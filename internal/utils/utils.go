// Package utils contains general helper functions used across the tree tool.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsHiddenName reports whether an entry name is hidden from rendering.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, HiddenEntryPrefix)
}

// EnsureTrailingSeparator appends PathSeparator to path unless it already ends with one.
func EnsureTrailingSeparator(path string) string {
	if strings.HasSuffix(path, PathSeparator) {
		return path
	}
	return path + PathSeparator
}

// ParentDirectoryWithSeparator returns the parent directory of path, cleaned and
// terminated by PathSeparator. The parent of the filesystem root is the root itself.
func ParentDirectoryWithSeparator(path string) string {
	cleanPath := filepath.ToSlash(filepath.Clean(path))
	return EnsureTrailingSeparator(filepath.ToSlash(filepath.Dir(cleanPath)))
}

// IsWithinDirectory reports whether candidate equals directory or lies beneath it.
// Both paths are compared in cleaned, slash-separated form.
func IsWithinDirectory(candidate, directory string) bool {
	cleanCandidate := filepath.ToSlash(filepath.Clean(candidate))
	cleanDirectory := filepath.ToSlash(filepath.Clean(directory))
	if cleanCandidate == cleanDirectory {
		return true
	}
	return strings.HasPrefix(cleanCandidate, EnsureTrailingSeparator(cleanDirectory))
}

// IsExistingDirectory reports whether path names an existing directory on the host filesystem.
func IsExistingDirectory(path string) bool {
	fileInformation, statError := os.Stat(path)
	return statError == nil && fileInformation.IsDir()
}
