package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores objects under a directory on the local filesystem.
type LocalStorage struct {
	root string
}

var _ Storage = (*LocalStorage)(nil)

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

// Root is the directory objects are written to.
func (l *LocalStorage) Root() string {
	return l.root
}

func (l *LocalStorage) Put(name string, r io.Reader) (int64, error) {
	path, err := l.fixPath(name)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file %s: %w", name, err)
	}
	defer f.Close()
	n, err := io.Copy(f, r)
	if err != nil {
		return n, fmt.Errorf("failed to copy data to file %s: %w", name, err)
	}
	return n, nil
}

func (l *LocalStorage) Open(name string) (Object, error) {
	path, err := l.fixPath(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", name, err)
	}
	return f, nil
}

func (l *LocalStorage) Exists(name string) (bool, error) {
	path, err := l.fixPath(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence of file %s: %w", name, err)
}

func (l *LocalStorage) Delete(name string) error {
	path, err := l.fixPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", name, err)
	}
	return nil
}

// fixPath maps name below root and refuses anything escaping it.
func (l *LocalStorage) fixPath(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash("/" + name))
	path := filepath.Join(l.root, clean)
	if !strings.HasPrefix(path, filepath.Clean(l.root)) {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return path, nil
}
