package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evepupil/notion-friends-sync/pkg/links"
	"github.com/evepupil/notion-friends-sync/pkg/logger"
)

// FileStore writes the generated document to a fixed path. Every write
// replaces the file in full; there is no merging with prior content.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a store writing to the given path. The parent
// directory must already exist.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log,
	}
}

// Path returns the destination path
func (s *FileStore) Path() string {
	return s.path
}

// Encode serializes a document the way the file is written: two-space
// indent, HTML escaping off so URLs stay readable.
func Encode(doc links.Document) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Write overwrites the destination file with the document. The write
// goes through a temp file in the same directory plus a rename, so the
// destination is either fully replaced or left untouched.
func (s *FileStore) Write(doc links.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	// CreateTemp defaults to 0600
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	s.log.Debugf("Wrote %d bytes to %s", len(data), s.path)

	return nil
}
