package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileDocuments keeps a whole profile document in one JSON file: phone -> profile.
type FileDocuments[P any] struct {
	path string
}

func NewFileDocuments[P any](path string) *FileDocuments[P] {
	return &FileDocuments[P]{path: path}
}

func (d *FileDocuments[P]) Load(_ context.Context) (map[string]P, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]P{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", d.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]P{}, nil
	}

	docs := make(map[string]P)
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", d.path, err)
	}
	return docs, nil
}

// Save rewrites the file in full. The data goes to a temp file first so a failed
// write never leaves a truncated document behind.
func (d *FileDocuments[P]) Save(_ context.Context, docs map[string]P) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", d.path, err)
	}
	return nil
}
