// Package storage persists uploaded resume files on local disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore writes uploaded files under a single root directory. Every
// stored file gets a unique generated name, so concurrent uploads never
// contend for the same target and no locking is needed.
type FileStore struct {
	root string
}

// NewFileStore creates the root directory if needed and returns a store.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &FileStore{root: root}, nil
}

// Root returns the directory files are stored under.
func (s *FileStore) Root() string {
	return s.root
}

// Save writes content under a unique name derived from the original
// filename and returns the stored name.
func (s *FileStore) Save(originalName string, content []byte) (string, error) {
	name := uniqueName(originalName)
	if err := os.WriteFile(filepath.Join(s.root, name), content, 0o644); err != nil {
		return "", fmt.Errorf("failed to store file %s: %w", name, err)
	}
	return name, nil
}

// uniqueName builds a collision-free stored name: a time-based prefix plus
// a random suffix, followed by the sanitized original filename.
func uniqueName(originalName string) string {
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixNano(), uuid.NewString()[:8], sanitizeFilename(originalName))
}

// sanitizeFilename strips path components and characters that are unsafe
// in a URL path segment.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "file"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
