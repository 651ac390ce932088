package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// DirSource reads resources from a directory tree.
// Lookups are case-insensitive: a name that does not match exactly is
// matched against a lowercase index of the tree. The index is rebuilt
// whenever it misses, so files added later are found.
type DirSource struct {
	root string
	fsys fs.FS

	mu    sync.Mutex
	index map[string]string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir, fsys: os.DirFS(dir)}
}

// Read reads name from the directory.
// Directories are reported as missing.
func (d *DirSource) Read(name string) ([]byte, error) {
	if info, err := fs.Stat(d.fsys, name); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", fs.ErrNotExist, name)
	}

	data, err := fs.ReadFile(d.fsys, name)
	if err == nil {
		return data, nil
	}
	if !isNotExist(err) {
		return nil, err
	}

	actual, err := d.resolve(strings.ToLower(name))
	if err != nil {
		return nil, err
	}
	if actual == "" {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, name)
	}
	return fs.ReadFile(d.fsys, actual)
}

// resolve maps a lowercase name to its on-disk path, or "" when absent.
func (d *DirSource) resolve(key string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if actual, ok := d.index[key]; ok {
		return actual, nil
	}
	index, err := d.buildIndex()
	if err != nil {
		return "", err
	}
	d.index = index
	return index[key], nil
}

// Close is a no-op; directories hold no handles.
func (d *DirSource) Close() error {
	return nil
}

func (d *DirSource) buildIndex() (map[string]string, error) {
	index := make(map[string]string)
	err := fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			index[strings.ToLower(p)] = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("indexing %s: %w", d.root, err)
	}
	return index, nil
}

// isNotExist also treats names fs.FS rejects as invalid as missing.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid)
}
