package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// File is a Store that keeps each key in its own file under a directory.
// Writes go to a temporary file that is renamed over the target, so a reader
// sees either the old value or the new one, never a torn write.
type File struct {
	dir string
}

// NewFile returns a File store rooted at dir, creating the directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv.NewFile: %w", err)
	}
	return &File{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (f *File) Dir() string {
	return f.dir
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("kv.File.Get: %w", err)
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv.File.Get: %w", err)
	}
	return string(data), true, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("kv.File.Set: %w", err)
	}
	tmp, err := os.CreateTemp(f.dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("kv.File.Set: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("kv.File.Set: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("kv.File.Set: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kv.File.Set: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("kv.File.Set: rename: %w", err)
	}
	return nil
}

// path maps a key to its file. Keys are path-escaped so any key is a single
// file name inside dir.
func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}
