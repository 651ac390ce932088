// Package encoding converts legacy text encodings to UTF-8 before parsing.
package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for encoding names Lookup does not know.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// UTF8 is the default encoding name.
const UTF8 = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lookup returns the x/text encoding for a name.
// Names are case-insensitive; "_" and "-" are interchangeable.
func Lookup(name string) (encoding.Encoding, error) {
	switch normalizeName(name) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "euc-kr", "cp949":
		return korean.EUCKR, nil
	case "shift-jis", "sjis":
		return japanese.ShiftJIS, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Decode converts data in the named encoding to a UTF-8 string.
// A leading byte order mark is removed.
func Decode(data []byte, name string) (string, error) {
	if isUTF8(name) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	result, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(result), nil
}

// Encode converts a UTF-8 string to the named encoding.
func Encode(s string, name string) ([]byte, error) {
	if isUTF8(name) {
		return []byte(s), nil
	}

	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	result, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}
	return result, nil
}

func isUTF8(name string) bool {
	switch normalizeName(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
