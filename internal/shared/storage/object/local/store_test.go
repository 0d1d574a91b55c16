package local

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fitcheck-backend/internal/shared/storage/object"
)

func TestPutOverwritesExistingObject(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "http://localhost:8080/files")
	ctx := context.Background()

	if _, err := store.Put(ctx, "m-1/mannequin.glb", "model/gltf-binary", strings.NewReader("first version")); err != nil {
		t.Fatalf("first put: %v", err)
	}
	n, err := store.Put(ctx, "m-1/mannequin.glb", "model/gltf-binary", strings.NewReader("v2"))
	if err != nil {
		t.Fatalf("second put: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 bytes written, got %d", n)
	}

	rc, err := store.Open(ctx, "m-1/mannequin.glb")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "v2" {
		t.Fatalf("expected overwritten content, got %q", got)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "m-1"))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single object on disk, got %d entries", len(entries))
	}
}

func TestPutRejectsTraversal(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files")
	_, err := store.Put(context.Background(), "../escape.glb", "model/gltf-binary", strings.NewReader("x"))
	if !errors.Is(err, object.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestPublicURL(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files/")
	got, err := store.PublicURL("m 1/mannequin.glb")
	if err != nil {
		t.Fatalf("public url: %v", err)
	}
	if got != "http://localhost:8080/files/m%201/mannequin.glb" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestPutHonorsCanceledContext(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Put(ctx, "m-1/mannequin.glb", "model/gltf-binary", strings.NewReader("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPutRegistersContentTypeForServing(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files")
	if _, err := store.Put(context.Background(), "m-1/mannequin.glb", "model/gltf-binary", strings.NewReader("glTF")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if got := ContentType("m-2/mannequin.glb"); got != "model/gltf-binary" {
		t.Fatalf("expected model/gltf-binary, got %q", got)
	}
	if got := ContentType("m-1/noext"); got != "application/octet-stream" {
		t.Fatalf("expected octet-stream fallback, got %q", got)
	}
}

func TestOpenDirectoryIsNotFound(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/files")
	ctx := context.Background()
	if _, err := store.Put(ctx, "m-1/mannequin.glb", "model/gltf-binary", strings.NewReader("glTF")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Open(ctx, "m-1"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist for a directory key, got %v", err)
	}
	if _, err := store.Open(ctx, "m-2/mannequin.glb"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist for a missing key, got %v", err)
	}
}
