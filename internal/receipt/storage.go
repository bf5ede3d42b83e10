package receipt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage defines the interface for receipt file access
type Storage interface {
	// Open opens an input receipt for reading
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates an output receipt
	Create(path string) (io.WriteCloser, error)

	// Delete removes a file
	Delete(path string) error
}

// LocalStorage implements the Storage interface using local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance. Relative paths are resolved
// against basePath; an empty basePath means the working directory.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if basePath != "" {
		info, err := os.Stat(basePath)
		if err != nil {
			return nil, fmt.Errorf("checking storage directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("storage path is not a directory: %s", basePath)
		}
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

func (l *LocalStorage) resolve(path string) string {
	if l.basePath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.basePath, path)
}

// Open opens a file from local storage
func (l *LocalStorage) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(l.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return f, nil
}

// Create creates or truncates a file in local storage
func (l *LocalStorage) Create(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(l.resolve(path), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	return f, nil
}

// Delete removes a file from local storage
func (l *LocalStorage) Delete(path string) error {
	if err := os.Remove(l.resolve(path)); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}
