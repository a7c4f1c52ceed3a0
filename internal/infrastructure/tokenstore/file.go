// Package tokenstore persists the session credential on disk, one opaque
// string per file.
package tokenstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps the raw token in a single file with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The parent
// directory is created lazily on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the token, replacing any prior value.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Read returns the stored token, or ("", false) when the file is missing,
// unreadable or empty.
func (s *FileStore) Read() (string, bool) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the stored token. Removing an already-absent token is not
// an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
