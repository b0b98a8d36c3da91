// Package storage provides local filesystem storage for course resource files
package storage

import (
	"io"
	"os"
	"path/filepath"
)

type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// path builds the full on-disk path for a stored file ID
func (s *localStorage) path(fileID string) string {
	return filepath.Join(s.basePath, filepath.Base(fileID))
}

// Create creates a new file and returns a WriteCloser
func (s *localStorage) Create(fileID string) (io.WriteCloser, error) {
	path := s.path(fileID)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// Open opens a stored file for reading
func (s *localStorage) Open(fileID string) (io.ReadCloser, error) {
	return os.Open(s.path(fileID))
}

// Delete removes a stored file
func (s *localStorage) Delete(fileID string) error {
	return os.Remove(s.path(fileID))
}
