package pack

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a named payload to be packed.
type File struct {
	Name string
	Data []byte
}

// Write writes an archive containing files to w.
// Payloads are compressed when that makes them smaller.
func Write(w io.Writer, files []File) error {
	var payload bytes.Buffer
	var table bytes.Buffer

	for _, f := range files {
		data, flags, err := compressIfSmaller(f.Data)
		if err != nil {
			return fmt.Errorf("compressing %s: %w", f.Name, err)
		}

		offset := uint32(headerSize + payload.Len())
		payload.Write(data)

		table.WriteString(NormalizePath(f.Name))
		table.WriteByte(0)

		var fixed [entryFixed]byte
		binary.LittleEndian.PutUint32(fixed[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(fixed[4:], uint32(len(f.Data)))
		fixed[8] = flags
		binary.LittleEndian.PutUint32(fixed[9:], offset)
		table.Write(fixed[:])
	}

	var compressedTable bytes.Buffer
	zw := zlib.NewWriter(&compressedTable)
	if _, err := zw.Write(table.Bytes()); err != nil {
		return fmt.Errorf("compressing table: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing table: %w", err)
	}

	header := Header{
		Version:     packVersion,
		FileCount:   uint32(len(files)),
		TableOffset: uint32(headerSize + payload.Len()),
		TableSize:   uint32(compressedTable.Len()),
	}
	copy(header.Magic[:], packMagic)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	if _, err := w.Write(compressedTable.Bytes()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

// Create writes an archive to path.
func Create(path string, files []File) error {
	var buf bytes.Buffer
	if err := Write(&buf, files); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// CollectDir reads every regular file under root.
// Names are slash-separated and relative to root.
func CollectDir(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, File{Name: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting %s: %w", root, err)
	}
	return files, nil
}

func compressIfSmaller(data []byte) ([]byte, uint8, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, 0, err
	}
	if err := zw.Close(); err != nil {
		return nil, 0, err
	}

	if buf.Len() < len(data) {
		return buf.Bytes(), FlagFile | FlagCompressed, nil
	}
	return data, FlagFile, nil
}
