// Package file stores registry snapshots in a single JSON or YAML document.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carehome/pkg/domain"

	"gopkg.in/yaml.v3"
)

var _ domain.SnapshotStore = (*Store)(nil)

// Format selects the document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor infers the format from a file extension; anything other than
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Store reads and writes one snapshot document at Path.
type Store struct {
	path   string
	format Format
}

// NewStore returns a store for path, inferring the format from its extension.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.InvalidArgumentError{Field: "storage path", Reason: "required"}
	}
	return &Store{path: path, format: FormatFor(path)}, nil
}

// Path returns the document location.
func (s *Store) Path() string { return s.path }

// SaveSnapshot writes snap to a temporary file and renames it over Path.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.marshal(snap)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the document at Path. A missing file yields
// domain.ErrNoSnapshot.
func (s *Store) LoadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap domain.Snapshot
	switch s.format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &snap)
	default:
		err = json.Unmarshal(data, &snap)
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode %s snapshot: %w", s.format, err)
	}
	return snap.Clone(), nil
}

func (s *Store) marshal(snap domain.Snapshot) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch s.format {
	case FormatYAML:
		data, err = yaml.Marshal(snap)
	default:
		data, err = json.MarshalIndent(snap, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s snapshot: %w", s.format, err)
	}
	return data, nil
}
