// Package storage keeps uploaded blobs in a local directory under generated names.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"health-server/entities"

	"github.com/google/uuid"
)

type BlobStore interface {
	// Store writes r under a fresh opaque name that keeps originalName's extension.
	Store(ownerID, originalName string, r io.Reader) (string, error)
	// Resolve returns the on-disk path of a stored blob.
	Resolve(filename string) (string, error)
	// Delete removes a blob. A missing blob is not an error.
	Delete(filename string) error
}

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: create upload dir: %v", entities.ErrStorageFailure, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Store(ownerID, originalName string, r io.Reader) (string, error) {
	name := uuid.New().String() + extension(originalName)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %v", entities.ErrStorageFailure, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: write blob: %v", entities.ErrStorageFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close blob: %v", entities.ErrStorageFailure, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("%w: rename blob: %v", entities.ErrStorageFailure, err)
	}
	return name, nil
}

func (s *LocalStore) Resolve(filename string) (string, error) {
	if !validName(filename) {
		return "", entities.ErrNotFound
	}
	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", entities.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: stat blob: %v", entities.ErrStorageFailure, err)
	}
	if info.IsDir() {
		return "", entities.ErrNotFound
	}
	return path, nil
}

func (s *LocalStore) Delete(filename string) error {
	if !validName(filename) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: delete blob: %v", entities.ErrStorageFailure, err)
}

// extension keeps only a short alphanumeric suffix of the client name.
func extension(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

func validName(name string) bool {
	return name != "" && name == filepath.Base(name) && !strings.HasPrefix(name, ".")
}
