package object

import (
	"context"
	"errors"
	"io"
	"net/url"
	"path"
	"strings"
)

// ErrInvalidKey is returned for keys that are empty or escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// Store saves binary objects at caller-chosen keys and resolves their public URLs.
type Store interface {
	// Put writes r to key, replacing any existing object, and returns the byte count.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	PublicURL(key string) (string, error)
}

// CleanKey normalizes a slash-separated key and rejects traversal.
func CleanKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" || strings.Contains(trimmed, `\`) {
		return "", ErrInvalidKey
	}
	for _, seg := range strings.Split(trimmed, "/") {
		if seg == ".." {
			return "", ErrInvalidKey
		}
	}
	clean := strings.TrimLeft(path.Clean("/"+trimmed), "/")
	if clean == "" || clean == "." {
		return "", ErrInvalidKey
	}
	return clean, nil
}

// JoinURL appends an escaped key to base.
func JoinURL(base, key string) string {
	segs := strings.Split(key, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segs, "/")
}
