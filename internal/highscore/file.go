package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the text record in a plain file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store for the given path. A leading ~ is expanded
// to the user's home directory. The file is not touched until Load or Save.
func NewFileStore(path string) (*FileStore, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements Store.
func (f *FileStore) Load() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) load() []int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return []int{}
	}
	scores, err := Decode(data)
	if err != nil {
		return []int{}
	}
	return scores
}

// Save implements Store.
func (f *FileStore) Save(scores []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(scores)
}

// Update implements Updater. The file is re-read under the store's lock.
func (f *FileStore) Update(fn func(scores []int) []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(fn(f.load()))
}

func (f *FileStore) save(scores []int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(f.path, Encode(scores), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", f.path, err)
	}
	return nil
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
