package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/harborbank/teller/internal/errors"
)

// sessionFileName is the file holding the persisted key/value pairs.
const sessionFileName = "session.json"

// FileStore implements Store on top of a JSON file in the teller directory.
//
// Every read loads the file and every write rewrites it, so state is durable
// across process runs and each Get observes a consistent snapshot. The file
// holds a flat string-to-string object; an unreadable or malformed file is
// treated as empty rather than surfaced to callers, matching the fail-closed
// handling of corrupt session state one level up.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store rooted at dir.
//
// The directory is created on first write, not here, so constructing a store
// never touches the filesystem.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, sessionFileName),
	}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the value for key and whether it was present.
func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.load()
	value, ok := values[key]
	return value, ok
}

// Set stores value under key.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.load()
	values[key] = value
	return f.save(values)
}

// Remove deletes key. Removing an absent key leaves the file untouched.
func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.load()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

// load reads the backing file, returning an empty map when the file is
// missing or malformed.
func (f *FileStore) load() map[string]string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return make(map[string]string)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return make(map[string]string)
	}
	return values
}

// save writes the map back with owner-only permissions, since it may hold a
// bearer token.
func (f *FileStore) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.NewStorageWriteError(f.path, err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.NewStorageWriteError(f.path, err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return errors.NewStorageWriteError(f.path, err)
	}
	return nil
}
