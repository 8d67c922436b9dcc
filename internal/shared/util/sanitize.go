package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName rejects names that could escape the object store root.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName normalizes an uploaded document file name into a single
// path segment. Traversal sequences are rejected, separators are flattened.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
