// Package pack reads and writes packed resource archives.
//
// An archive is a fixed header, the entry payloads, and a zlib-compressed
// index table at the end:
//
//	header  (32 bytes, little endian)
//	payload (entry data, stored or zlib-compressed)
//	table   (zlib: name\0 compressed:u32 size:u32 flags:u8 offset:u32 ...)
package pack

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
)

const (
	packMagic   = "OMCHPACK"
	packVersion = 1
	headerSize  = 32
	entryFixed  = 13 // bytes after the name terminator
)

// Entry flags.
const (
	FlagFile       uint8 = 0x01
	FlagCompressed uint8 = 0x02
)

// Archive format errors.
var (
	ErrInvalidMagic       = errors.New("invalid pack magic: expected 'OMCHPACK'")
	ErrUnsupportedVersion = errors.New("unsupported pack version")
	ErrCorruptTable       = errors.New("corrupt pack table")
)

// Header contains the archive header.
type Header struct {
	Magic       [8]byte
	Version     uint32
	FileCount   uint32
	TableOffset uint32
	TableSize   uint32
	Reserved    [8]byte
}

// Entry represents a file entry in the archive.
type Entry struct {
	Name             string
	CompressedSize   uint32
	UncompressedSize uint32
	Flags            uint8
	Offset           uint32
}

// Archive represents an opened pack archive.
type Archive struct {
	mu      sync.Mutex
	file    *os.File
	header  Header
	entries map[string]*Entry
}

// Open opens an archive for reading.
func Open(path string) (*Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	archive := &Archive{
		file:    file,
		entries: make(map[string]*Entry),
	}

	if err := archive.readHeader(); err != nil {
		file.Close()
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if err := archive.readTable(); err != nil {
		file.Close()
		return nil, fmt.Errorf("reading table: %w", err)
	}

	return archive, nil
}

// Close closes the archive.
func (a *Archive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

func (a *Archive) readHeader() error {
	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if err := binary.Read(a.file, binary.LittleEndian, &a.header); err != nil {
		return err
	}

	if string(a.header.Magic[:]) != packMagic {
		return ErrInvalidMagic
	}

	if a.header.Version != packVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, a.header.Version)
	}

	return nil
}

func (a *Archive) readTable() error {
	if _, err := a.file.Seek(int64(a.header.TableOffset), io.SeekStart); err != nil {
		return err
	}

	compressed := make([]byte, a.header.TableSize)
	if _, err := io.ReadFull(a.file, compressed); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}

	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}
	defer reader.Close()

	table, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}

	offset := 0
	for i := uint32(0); i < a.header.FileCount; i++ {
		nameEnd := bytes.IndexByte(table[offset:], 0)
		if nameEnd < 0 {
			return fmt.Errorf("%w: entry %d has no name terminator", ErrCorruptTable, i)
		}
		name := string(table[offset : offset+nameEnd])
		offset += nameEnd + 1

		if offset+entryFixed > len(table) {
			return fmt.Errorf("%w: entry %d truncated", ErrCorruptTable, i)
		}

		entry := &Entry{
			Name:             NormalizePath(name),
			CompressedSize:   binary.LittleEndian.Uint32(table[offset:]),
			UncompressedSize: binary.LittleEndian.Uint32(table[offset+4:]),
			Flags:            table[offset+8],
			Offset:           binary.LittleEndian.Uint32(table[offset+9:]),
		}
		offset += entryFixed

		if entry.Flags&FlagFile != 0 {
			a.entries[entry.Name] = entry
		}
	}

	return nil
}

// List returns all file paths in the archive, sorted.
func (a *Archive) List() []string {
	result := make([]string, 0, len(a.entries))
	for path := range a.entries {
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}

// Contains checks if a file exists.
func (a *Archive) Contains(path string) bool {
	_, ok := a.entries[NormalizePath(path)]
	return ok
}

// Stat returns the entry for path.
func (a *Archive) Stat(path string) (*Entry, bool) {
	entry, ok := a.entries[NormalizePath(path)]
	return entry, ok
}

// Read reads a file from the archive.
// Missing files return an error wrapping fs.ErrNotExist.
func (a *Archive) Read(path string) ([]byte, error) {
	entry, ok := a.entries[NormalizePath(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, path)
	}

	a.mu.Lock()
	raw, err := a.readAt(entry)
	a.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if entry.Flags&FlagCompressed == 0 {
		return raw, nil
	}

	reader, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("inflating %s: %w", path, err)
	}
	defer reader.Close()

	result := make([]byte, entry.UncompressedSize)
	if _, err := io.ReadFull(reader, result); err != nil {
		return nil, fmt.Errorf("inflating %s: %w", path, err)
	}
	return result, nil
}

func (a *Archive) readAt(entry *Entry) ([]byte, error) {
	if a.file == nil {
		return nil, fs.ErrClosed
	}
	data := make([]byte, entry.CompressedSize)
	if _, err := a.file.ReadAt(data, int64(entry.Offset)); err != nil {
		return nil, err
	}
	return data, nil
}

// NormalizePath converts backslashes to slashes and lowercases the path.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	path = strings.TrimPrefix(path, "./")
	return strings.ToLower(path)
}
