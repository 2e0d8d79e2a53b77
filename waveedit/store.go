package waveedit

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type (
	// MemoryStore is a ClipboardStore living only as long as the process.
	MemoryStore map[string]string

	// FileStore is a ClipboardStore persisted as a YAML mapping in a file, so
	// the clipboard survives restarts and is shared between instances.
	FileStore struct {
		path string
	}
)

func NewMemoryStore() MemoryStore { return MemoryStore{} }

func (s MemoryStore) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func (s MemoryStore) Set(key, value string) { s[key] = value }

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Get(key string) (string, bool) {
	values, err := s.read()
	if err != nil {
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) {
	if err := s.set(key, value); err != nil {
		log.Printf("could not save clipboard: %v", err)
	}
}

func (s *FileStore) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(b, &values); err != nil {
		return nil, fmt.Errorf("could not unmarshal %s: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) set(key, value string) error {
	values, err := s.read()
	if err != nil {
		values = map[string]string{}
	}
	values[key] = value
	out, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("could not marshal clipboard: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("could not create clipboard directory: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("could not write clipboard file: %w", err)
	}
	return nil
}
