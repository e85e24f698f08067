package portal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

// Storage slot names used by the session store.
const (
	StorageKeyToken    = "token"
	StorageKeyUserInfo = "userInfo"
)

// MemoryStorage is a process-local Storage, used as the default and in tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: map[string]string{}}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slots[key], nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// FileStorage persists slots as a single JSON document on disk, so a CLI
// process can resume the previous session. Writes go through a temp file
// rename to keep the document whole under interruption.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		return "", err
	}
	return slots[key], nil
}

func (f *FileStorage) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		return err
	}
	slots[key] = value
	return f.write(slots)
}

func (f *FileStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		return err
	}

	if _, ok := slots[key]; !ok {
		return nil
	}
	delete(slots, key)
	return f.write(slots)
}

func (f *FileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to read session file")
	}

	slots := map[string]string{}
	if err := json.Unmarshal(data, &slots); err != nil {
		// a corrupt session file reads as empty, same as a missing one
		return map[string]string{}, nil
	}
	return slots, nil
}

func (f *FileStorage) write(slots map[string]string) error {
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "unable to serialize session file")
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to create session dir")
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to write session file")
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to replace session file")
	}
	return nil
}
