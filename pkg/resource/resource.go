// Package resource resolves logical resource names to raw file content.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Owmacohe/OMCHTools/pkg/pack"
)

// ErrNotFound is returned when no source holds the requested name.
var ErrNotFound = errors.New("resource not found")

// Loader maps a logical name to raw content.
type Loader interface {
	Load(name string) ([]byte, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) ([]byte, error)

// Load calls f(name).
func (f LoaderFunc) Load(name string) ([]byte, error) {
	return f(name)
}

// Source is a place resources can be read from.
// Read must return an error wrapping fs.ErrNotExist for missing names.
type Source interface {
	Read(name string) ([]byte, error)
	Close() error
}

// DefaultExtensions are tried, in order, for names without an extension.
var DefaultExtensions = []string{".txt", ".csv"}

// Manager loads resources from a stack of sources.
// Sources are searched in reverse order (last added = highest priority).
type Manager struct {
	sources    []Source
	cache      *Cache
	extensions []string
	log        *zap.Logger
	mu         sync.RWMutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithExtensions overrides the extensions tried for bare names.
func WithExtensions(exts ...string) Option {
	return func(m *Manager) {
		m.extensions = exts
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a new resource manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		cache:      NewCache(),
		extensions: DefaultExtensions,
		log:        zap.L(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSource pushes a source on top of the search stack.
func (m *Manager) AddSource(src Source) {
	m.mu.Lock()
	m.sources = append(m.sources, src)
	m.mu.Unlock()
}

// AddDir adds a directory source.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding directory %s: not a directory", dir)
	}

	m.AddSource(NewDirSource(dir))
	m.log.Debug("resource directory added", zap.String("dir", dir))
	return nil
}

// AddPack adds a packed archive source.
func (m *Manager) AddPack(file string) error {
	archive, err := pack.Open(file)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", file, err)
	}

	m.AddSource(archive)
	m.log.Debug("resource archive added",
		zap.String("file", file),
		zap.Int("entries", len(archive.List())))
	return nil
}

// Load returns the content for name. The returned slice belongs to the
// caller. Missing names return an error wrapping ErrNotFound.
func (m *Manager) Load(name string) ([]byte, error) {
	key := NormalizeName(name)
	if data, ok := m.cache.Get(key); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, candidate := range m.candidates(key) {
		for i := len(m.sources) - 1; i >= 0; i-- {
			data, err := m.sources[i].Read(candidate)
			if err == nil {
				m.cache.Set(key, data)
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("loading %s: %w", name, err)
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// candidates lists the names tried for key, exact name first.
func (m *Manager) candidates(key string) []string {
	if path.Ext(key) != "" {
		return []string{key}
	}
	names := make([]string, 0, len(m.extensions)+1)
	names = append(names, key)
	for _, ext := range m.extensions {
		names = append(names, key+ext)
	}
	return names
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close closes all sources and clears the cache.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	for _, src := range m.sources {
		err = multierr.Append(err, src.Close())
	}
	m.sources = nil
	m.cache.Clear()
	return err
}

// NormalizeName converts backslashes to slashes, drops a leading "./" or "/"
// and lowercases the name.
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(name, "./")
	name = strings.TrimPrefix(name, "/")
	return strings.ToLower(name)
}
