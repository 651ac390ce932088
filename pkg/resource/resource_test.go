package resource

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/Owmacohe/OMCHTools/pkg/pack"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestManagerLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "levels", "Heights.csv"), "1,2\n3,4")
	writeFile(t, filepath.Join(dir, "names.txt"), "a\nb")

	m := NewManager()
	defer m.Close()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir failed: %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"names.txt", "a\nb"},
		{"names", "a\nb"},
		{"levels/heights", "1,2\n3,4"},
		{`Levels\Heights.csv`, "1,2\n3,4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := m.Load(tt.name)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, data)
			}
		})
	}
}

func TestManagerNotFound(t *testing.T) {
	m := NewManager()
	defer m.Close()
	if err := m.AddDir(t.TempDir()); err != nil {
		t.Fatalf("AddDir failed: %v", err)
	}

	_, err := m.Load("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerPriority(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	writeFile(t, filepath.Join(low, "config.txt"), "low")
	writeFile(t, filepath.Join(low, "only_low.txt"), "only low")
	writeFile(t, filepath.Join(high, "config.txt"), "high")

	m := NewManager()
	defer m.Close()
	m.AddDir(low)
	m.AddDir(high)

	data, err := m.Load("config")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "high" {
		t.Errorf("expected last added source to win, got %q", data)
	}

	data, err = m.Load("only_low")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "only low" {
		t.Errorf("expected fallback to lower source, got %q", data)
	}
}

func TestManagerLoadFromPack(t *testing.T) {
	packPath := filepath.Join(t.TempDir(), "res.pack")
	err := pack.Create(packPath, []pack.File{
		{Name: "grids/walls.csv", Data: []byte("0,1,0\n1,1,1")},
	})
	if err != nil {
		t.Fatalf("failed to create pack: %v", err)
	}

	m := NewManager()
	defer m.Close()
	if err := m.AddPack(packPath); err != nil {
		t.Fatalf("AddPack failed: %v", err)
	}

	data, err := m.Load("grids/walls")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "0,1,0\n1,1,1" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestManagerCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")

	m := NewManager()
	defer m.Close()
	m.AddDir(dir)

	for i := 0; i < 3; i++ {
		if _, err := m.Load("a"); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	hits, misses := m.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("expected 2 hits and 1 miss, got %d hits, %d misses", hits, misses)
	}
}

func TestManagerWithExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "points.xyz"), "1 2 3")

	m := NewManager(WithExtensions(".xyz"))
	defer m.Close()
	m.AddDir(dir)

	if _, err := m.Load("points"); err != nil {
		t.Errorf("expected .xyz extension to resolve, got %v", err)
	}
}

type failingSource struct{ closeErr error }

func (f failingSource) Read(name string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (f failingSource) Close() error {
	return f.closeErr
}

func TestManagerSourceError(t *testing.T) {
	m := NewManager()
	m.AddSource(failingSource{})

	_, err := m.Load("anything.txt")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected source error to propagate, got %v", err)
	}
}

func TestManagerCloseAggregatesErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	m := NewManager()
	m.AddSource(failingSource{closeErr: errA})
	m.AddSource(failingSource{closeErr: errB})

	err := m.Close()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected both close errors, got %v", err)
	}
}

func TestAddDirMissing(t *testing.T) {
	m := NewManager()
	if err := m.AddDir("/nonexistent/resource/dir"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestDirSourceDirectoryIsMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "levels", "a.txt"), "a")

	_, err := NewDirSource(dir).Read("levels")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist for a directory, got %v", err)
	}
}

func TestLoaderFunc(t *testing.T) {
	var l Loader = LoaderFunc(func(name string) ([]byte, error) {
		return []byte("loaded " + name), nil
	})

	data, err := l.Load("x")
	if err != nil || string(data) != "loaded x" {
		t.Errorf("unexpected result %q, %v", data, err)
	}
}

func TestManagerFindsFilesAddedAfterMiss(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Names.txt"), "a")

	m := NewManager()
	defer m.Close()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir failed: %v", err)
	}

	if _, err := m.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.Load("names"); err != nil {
		t.Fatalf("Load(names) failed: %v", err)
	}

	writeFile(t, filepath.Join(dir, "Levels.txt"), "1")
	data, err := m.Load("Levels")
	if err != nil {
		t.Fatalf("Load(Levels) after creating file failed: %v", err)
	}
	if string(data) != "1" {
		t.Errorf("expected %q, got %q", "1", data)
	}
}

func TestManagerLoadReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "abc")

	m := NewManager()
	defer m.Close()
	m.AddDir(dir)

	first, err := m.Load("a")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	first[0] = 'X'

	second, err := m.Load("a")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(second) != "abc" {
		t.Errorf("cached content changed by caller: got %q", second)
	}
	second[1] = 'Y'

	third, _ := m.Load("a")
	if string(third) != "abc" {
		t.Errorf("cache hit returned shared slice: got %q", third)
	}
}
