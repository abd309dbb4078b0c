// Package store persists small JSON documents by key.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	headlineerrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

const (
	keyMaxLength = 64
	docExt       = ".json"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// Store is the key-value persistence the session and library depend on.
type Store interface {
	// Get decodes the document stored under key into v. It reports false,
	// leaving v untouched, when no document exists.
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
	Delete(key string) error
	Keys() ([]string, error)
}

// ValidateKey ensures key is usable as a document file name.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("store key cannot be empty")
	}
	if len(key) > keyMaxLength {
		return fmt.Errorf("store key %q is too long: maximum length is %d characters", key, keyMaxLength)
	}
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid store key %q: must match %s", key, keyPattern.String())
	}
	return nil
}

// FileStore keeps one indented JSON file per key inside a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates the directory if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory documents are stored in.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+docExt)
}

// Get reads and decodes the document stored under key.
func (s *FileStore) Get(key string, v any) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, headlineerrors.NewStoreError(key, "get", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, headlineerrors.NewStoreError(key, "get", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, headlineerrors.NewStoreError(key, "get", fmt.Errorf("failed to parse document: %w", err))
	}
	return true, nil
}

// Put encodes v and writes it atomically under key.
func (s *FileStore) Put(key string, v any) error {
	if err := ValidateKey(key); err != nil {
		return headlineerrors.NewStoreError(key, "put", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return headlineerrors.NewStoreError(key, "put", fmt.Errorf("failed to marshal document: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return headlineerrors.NewStoreError(key, "put", fmt.Errorf("failed to write temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return headlineerrors.NewStoreError(key, "put", fmt.Errorf("failed to rename temporary file: %w", err))
	}

	return nil
}

// Delete removes the document under key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	if err := ValidateKey(key); err != nil {
		return headlineerrors.NewStoreError(key, "delete", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return headlineerrors.NewStoreError(key, "delete", err)
	}
	return nil
}

// Keys lists stored keys in lexical order.
func (s *FileStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, headlineerrors.NewStoreError("", "keys", err)
	}

	keys := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, docExt) {
			continue
		}
		key := strings.TrimSuffix(name, docExt)
		if ValidateKey(key) == nil {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// MemoryStore is an in-process Store. Documents are kept encoded so callers
// never share memory with stored values.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string, v any) (bool, error) {
	m.mu.RLock()
	data, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, headlineerrors.NewStoreError(key, "get", err)
	}
	return true, nil
}

func (m *MemoryStore) Put(key string, v any) error {
	if err := ValidateKey(key); err != nil {
		return headlineerrors.NewStoreError(key, "put", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return headlineerrors.NewStoreError(key, "put", err)
	}
	m.mu.Lock()
	m.docs[key] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	delete(m.docs, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.docs))
	for key := range m.docs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
