package textfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// splitRows splits content into rows, or returns nil for whitespace-only content.
func splitRows(text string, o *options) []string {
	if strings.TrimSpace(text) == "" {
		if o.name != "" {
			o.log.Info("file is empty", zap.String("name", o.name))
		} else {
			o.log.Info("content is empty")
		}
		return nil
	}

	rows := strings.Split(text, "\n")
	if o.trim == TrimSpace {
		for i := range rows {
			rows[i] = strings.TrimSpace(rows[i])
		}
	}
	return rows
}

func checkDelimiter(delim rune) error {
	if delim == '\n' || delim == utf8.RuneError || !utf8.ValidRune(delim) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, delim)
	}
	return nil
}

// Numeric fields tolerate surrounding whitespace.

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, numberError(err)
	}
	return v, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, numberError(err)
	}
	return float32(v), nil
}

func parseString(s string) (string, error) {
	return s, nil
}

// parseVector3 splits s on delim into exactly three floats (x, y, z).
func parseVector3(s string, delim rune) (math.Vec3, error) {
	parts := strings.Split(s, string(delim))
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: got %d", ErrVectorArity, len(parts))
	}

	var xyz [3]float32
	for i, part := range parts {
		v, err := parseFloat(part)
		if err != nil {
			return math.Vec3{}, err
		}
		xyz[i] = v
	}
	return math.FromArray(xyz), nil
}

func numberError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Errorf("%w: %v", ErrMalformedNumber, numErr.Err)
	}
	return fmt.Errorf("%w: %v", ErrMalformedNumber, err)
}
