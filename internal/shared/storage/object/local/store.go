package local

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fitcheck-backend/internal/shared/storage/object"
)

// Store implements object.Store on the local filesystem. Objects are served
// by the API under publicBase (see server.NewRouter).
type Store struct {
	baseDir    string
	publicBase string
}

// New creates a local object store rooted at baseDir.
func New(baseDir, publicBase string) *Store {
	return &Store{baseDir: baseDir, publicBase: strings.TrimRight(publicBase, "/")}
}

// Put writes the reader to key through a temp file and renames it into place,
// so readers never observe a half-written object. The filesystem keeps no
// metadata, so contentType is registered for the key's extension and applies
// when objects are served.
func (s *Store) Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	clean, err := object.CleanKey(key)
	if err != nil {
		return 0, err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(clean))
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	written, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("write body: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return 0, fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		return 0, fmt.Errorf("rename: %w", err)
	}
	if err := registerContentType(clean, contentType); err != nil {
		return 0, err
	}
	return written, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := object.CleanKey(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: clean, Err: fs.ErrNotExist}
	}
	return f, nil
}

// PublicURL returns the URL the API serves key from.
func (s *Store) PublicURL(key string) (string, error) {
	clean, err := object.CleanKey(key)
	if err != nil {
		return "", err
	}
	if s.publicBase == "" {
		return "", fmt.Errorf("local store public base url not configured")
	}
	return object.JoinURL(s.publicBase, clean), nil
}

// ContentType reports the type an object is served with.
func ContentType(key string) string {
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func registerContentType(key, contentType string) error {
	ext := path.Ext(key)
	if ext == "" || strings.TrimSpace(contentType) == "" {
		return nil
	}
	if mime.TypeByExtension(ext) == contentType {
		return nil
	}
	if err := mime.AddExtensionType(ext, contentType); err != nil {
		return fmt.Errorf("register content type %s for %s: %w", contentType, ext, err)
	}
	return nil
}

var _ object.Store = (*Store)(nil)
