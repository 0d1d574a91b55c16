package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName is returned for empty names and traversal segments.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens path separators into a single safe segment.
// Names whose path segments include "." or ".." are rejected; dots inside a
// segment are kept.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	for _, seg := range strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == "." || seg == ".." {
			return "", ErrInvalidFileName
		}
	}
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
