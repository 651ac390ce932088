package textfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// observedLogger returns a logger that records entries at info and above.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func TestParseLines(t *testing.T) {
	got, err := ParseLines("  alpha \nbeta\t\n\tgamma")
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}

	want := []string{"alpha", "beta", "gamma"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLines mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLinesKeepsTrailingEmptyLine(t *testing.T) {
	got, err := ParseLines("a\nb\n")
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	if len(got) != 3 || got[2] != "" {
		t.Errorf("expected trailing empty line, got %q", got)
	}
}

func TestParseLinesCarriageReturn(t *testing.T) {
	got, err := ParseLines("a\r\nb\r\n c")
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("expected trimming to drop carriage returns, got %q", got)
	}

	raw, err := ParseLines("a\r\nb", WithTrim(TrimNone))
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	if raw[0] != "a\r" {
		t.Errorf("expected TrimNone to keep carriage return, got %q", raw[0])
	}
}

func TestParseLinesLineCount(t *testing.T) {
	src := []string{"one", "  two  ", "three", "four four", "5"}
	got, err := ParseLines(strings.Join(src, "\n"))
	if err != nil {
		t.Fatalf("ParseLines failed: %v", err)
	}
	want := make([]string, len(src))
	for i := range src {
		want[i] = strings.TrimSpace(src[i])
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLines mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIntLines(t *testing.T) {
	got, err := ParseIntLines("1\n-20\n 300 \n+4")
	if err != nil {
		t.Fatalf("ParseIntLines failed: %v", err)
	}

	want := []int{1, -20, 300, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestParseIntLinesMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"letters", "1\nabc\n3", 2},
		{"float", "1.5", 1},
		{"trailing terminator", "1\n2\n", 3},
		{"overflow", "99999999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIntLines(tt.text)
			if !errors.Is(err, ErrMalformedNumber) {
				t.Fatalf("expected ErrMalformedNumber, got %v", err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, perr.Line)
			}
		})
	}
}

func TestParseFloatLines(t *testing.T) {
	got, err := ParseFloatLines("1.5\n-0.25\n3\n1e3")
	if err != nil {
		t.Fatalf("ParseFloatLines failed: %v", err)
	}

	want := []float32{1.5, -0.25, 3, 1000}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if _, err := ParseFloatLines("1,5"); !errors.Is(err, ErrMalformedNumber) {
		t.Errorf("expected comma decimal to fail, got %v", err)
	}
}

func TestParseVector3Lines(t *testing.T) {
	got, err := ParseVector3Lines("1,2,3\n4,5,6", ',')
	if err != nil {
		t.Fatalf("ParseVector3Lines failed: %v", err)
	}

	want := []math.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}
	if len(got) != len(want) {
		t.Fatalf("expected %d vectors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vector %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseVector3LinesCustomDelimiter(t *testing.T) {
	got, err := ParseVector3Lines("0.5 ; -1 ; 2.25", ';')
	if err != nil {
		t.Fatalf("ParseVector3Lines failed: %v", err)
	}
	if got[0] != (math.Vec3{X: 0.5, Y: -1, Z: 2.25}) {
		t.Errorf("unexpected vector %v", got[0])
	}
}

func TestParseVector3LinesArity(t *testing.T) {
	for _, text := range []string{"1,2", "1,2,3,4", "1"} {
		_, err := ParseVector3Lines(text, ',')
		if !errors.Is(err, ErrVectorArity) {
			t.Errorf("%q: expected ErrVectorArity, got %v", text, err)
		}
	}
}

func TestParseVector3LinesInvalidDelimiter(t *testing.T) {
	_, err := ParseVector3Lines("1\n2\n3", '\n')
	if !errors.Is(err, ErrInvalidDelimiter) {
		t.Errorf("expected ErrInvalidDelimiter, got %v", err)
	}
}

func TestEmptyContent(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n", " \t\r\n "} {
		log, logs := observedLogger()

		ints, err := ParseIntLines(text, WithLogger(log))
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", text, err)
		}
		if ints == nil || len(ints) != 0 {
			t.Errorf("%q: expected empty non-nil slice, got %#v", text, ints)
		}
		if logs.Len() != 1 {
			t.Errorf("%q: expected 1 diagnostic, got %d", text, logs.Len())
			continue
		}
		if lvl := logs.All()[0].Level; lvl != zapcore.InfoLevel {
			t.Errorf("%q: diagnostic logged at %v, want info", text, lvl)
		}
	}
}

func TestEmptyContentAllParsers(t *testing.T) {
	log, logs := observedLogger()
	opts := []Option{WithLogger(log)}

	lines, _ := ParseLines("", opts...)
	floats, _ := ParseFloatLines("", opts...)
	vecs, _ := ParseVector3Lines("", ',', opts...)
	if len(lines) != 0 || len(floats) != 0 || len(vecs) != 0 {
		t.Error("expected empty results")
	}
	if got := logs.FilterMessage("content is empty").Len(); got != 3 {
		t.Errorf("expected 3 diagnostics, got %d", got)
	}
}

func TestParseIdempotent(t *testing.T) {
	text := "1,2,3\n4,5,6\n7,8,9"

	a, err := ParseVector3Lines(text, ',')
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	b, err := ParseVector3Lines(text, ',')
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}

	if &a[0] == &b[0] {
		t.Error("expected fresh slices per call")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("vector %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseIntLines("1\nx")
	want := `line 2: malformed number: invalid syntax: "x"`
	if err == nil || err.Error() != want {
		t.Errorf("expected %q, got %v", want, err)
	}
}
