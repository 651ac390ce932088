package textfile

import (
	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// ParseLines returns one string per row.
// A final line terminator yields a trailing empty string.
func ParseLines(text string, opts ...Option) ([]string, error) {
	rows := splitRows(text, newOptions(opts))
	if rows == nil {
		return []string{}, nil
	}
	return rows, nil
}

// ParseIntLines parses one base-10 integer per row.
func ParseIntLines(text string, opts ...Option) ([]int, error) {
	return parseLines(text, parseInt, opts)
}

// ParseFloatLines parses one floating-point value per row.
func ParseFloatLines(text string, opts ...Option) ([]float32, error) {
	return parseLines(text, parseFloat, opts)
}

// ParseVector3Lines parses one vector per row, its x, y and z separated by delim.
func ParseVector3Lines(text string, delim rune, opts ...Option) ([]math.Vec3, error) {
	if err := checkDelimiter(delim); err != nil {
		return nil, err
	}
	return parseLines(text, func(s string) (math.Vec3, error) {
		return parseVector3(s, delim)
	}, opts)
}

func parseLines[T any](text string, conv func(string) (T, error), opts []Option) ([]T, error) {
	rows := splitRows(text, newOptions(opts))

	result := make([]T, len(rows))
	for i, row := range rows {
		v, err := conv(row)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: row, Err: err}
		}
		result[i] = v
	}
	return result, nil
}
