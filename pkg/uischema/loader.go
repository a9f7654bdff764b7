package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// Load reads overlays from path, which may name a single file or a directory
// walked with LoadFS. An empty path returns an empty store.
func Load(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return &Store{forms: make(map[string]Overlay)}, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}
	return LoadFile(path)
}

// LoadFile parses a single overlay document from disk. An empty path returns
// an empty store.
func LoadFile(path string) (*Store, error) {
	store := &Store{forms: make(map[string]Overlay)}
	if strings.TrimSpace(path) == "" {
		return store, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	if err := store.add(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or no overlay files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Overlay)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Overlay returns the overlay for the supplied form id.
func (s *Store) Overlay(id string) (Overlay, bool) {
	if s == nil {
		return Overlay{}, false
	}
	overlay, ok := s.forms[id]
	return overlay, ok
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for rawID, raw := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("uischema: file %s defines an empty form id", source)
		}
		if _, exists := s.forms[id]; exists {
			return fmt.Errorf("uischema: duplicate form %q (file %s)", id, source)
		}

		fields := make(map[string]FieldConfig, len(raw.Fields))
		for name, cfg := range raw.Fields {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return fmt.Errorf("uischema: form %q in %s has an empty field name", id, source)
			}
			fields[trimmed] = cfg
		}

		s.forms[id] = Overlay{
			ID:     id,
			Source: source,
			Form:   raw.Form,
			Fields: fields,
		}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
