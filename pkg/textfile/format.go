package textfile

import (
	"strconv"
	"strings"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// FormatLines writes one value per line, the inverse of the flat parsers.
func FormatLines[T any](values []T, format func(T) string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(format(v))
	}
	return b.String()
}

// FormatGrid writes one row per line with cells joined by delim,
// the inverse of the grid parsers.
func FormatGrid[T any](g *Grid[T], delim rune, format func(T) string) string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range g.Row(r) {
			if c > 0 {
				b.WriteRune(delim)
			}
			b.WriteString(format(v))
		}
	}
	return b.String()
}

// FormatString returns s unchanged.
func FormatString(s string) string {
	return s
}

// FormatInt formats an integer in base 10.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatFloat formats a float with the fewest digits that parse back exactly.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// FormatVector3 returns a formatter joining x, y and z with delim.
func FormatVector3(delim rune) func(math.Vec3) string {
	sep := string(delim)
	return func(v math.Vec3) string {
		return FormatFloat(v.X) + sep + FormatFloat(v.Y) + sep + FormatFloat(v.Z)
	}
}
