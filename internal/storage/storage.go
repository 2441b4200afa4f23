package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	ErrAlreadyExists = errors.New("object already exists")
	ErrInvalidPath   = errors.New("invalid object path")
)

// Storage keeps receipt files. Paths are relative, slash-separated object
// names; the public URL is resolvable by the HTTP layer.
type Storage interface {
	Store(path string, content []byte, contentType string, overwrite bool) error
	Delete(path string) error
	PublicURL(path string) string
}

// LocalStorage stores objects on the local filesystem under a root directory.
type LocalStorage struct {
	rootDir   string
	urlPrefix string
}

func NewLocalStorage(rootDir string, urlPrefix string) *LocalStorage {
	return &LocalStorage{rootDir: rootDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

func (s *LocalStorage) Store(path string, content []byte, contentType string, overwrite bool) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(fullPath); err == nil {
			return ErrAlreadyExists
		}
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("could not create storage directory: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("could not write object %s: %w", path, err)
	}
	log.Debugf("stored object %s (%d bytes, %s)", path, len(content), contentType)
	return nil
}

func (s *LocalStorage) Delete(path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}

func (s *LocalStorage) PublicURL(path string) string {
	return s.urlPrefix + "/" + path
}

// Dir returns the storage root, for mounting a static file route.
func (s *LocalStorage) Dir() string {
	return s.rootDir
}

// resolve rejects paths escaping the storage root.
func (s *LocalStorage) resolve(path string) (string, error) {
	if path == "" || strings.Contains(path, "..") || strings.HasPrefix(path, "/") {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.rootDir, filepath.FromSlash(path)), nil
}
