// Package textfile parses line-oriented delimited text into typed slices and grids.
//
// Content is split into rows on '\n' and each row is whitespace-trimmed.
// Flat parsers produce one value per row; grid parsers split rows into cells
// on a delimiter and take the column count from the first row. Whitespace-only
// content is not an error: it yields an empty result and a diagnostic log line.
//
// All functions are pure and safe for concurrent use.
package textfile

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Parse errors.
var (
	ErrMalformedNumber   = errors.New("malformed number")
	ErrVectorArity       = errors.New("vector must have exactly 3 components")
	ErrRaggedRow         = errors.New("row width differs from first row")
	ErrDelimiterConflict = errors.New("vector delimiter must differ from cell delimiter")
	ErrInvalidDelimiter  = errors.New("invalid delimiter")
)

// ParseError reports where in the content a parse failed.
type ParseError struct {
	Line   int    // 1-based row
	Column int    // 1-based cell, 0 for flat parsers
	Text   string // offending row or cell
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %v: %q", e.Line, e.Column, e.Err, e.Text)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TrimPolicy controls how rows are trimmed before use.
type TrimPolicy int

const (
	TrimSpace TrimPolicy = iota // trim surrounding Unicode whitespace
	TrimNone                    // keep rows exactly as split
)

// RaggedPolicy controls grid rows whose cell count differs from the first row.
type RaggedPolicy int

const (
	// RaggedTruncate fails on short rows and drops cells past the first row's width.
	RaggedTruncate RaggedPolicy = iota
	// RaggedStrict fails on any row whose width differs from the first row.
	RaggedStrict
	// RaggedPad fills short rows with zero values and drops extra cells.
	RaggedPad
)

// String returns the policy name as used in configuration.
func (p RaggedPolicy) String() string {
	switch p {
	case RaggedTruncate:
		return "truncate"
	case RaggedStrict:
		return "strict"
	case RaggedPad:
		return "pad"
	default:
		return fmt.Sprintf("RaggedPolicy(%d)", int(p))
	}
}

// ParseRaggedPolicy converts a configuration name to a RaggedPolicy.
func ParseRaggedPolicy(name string) (RaggedPolicy, error) {
	switch name {
	case "", "truncate":
		return RaggedTruncate, nil
	case "strict":
		return RaggedStrict, nil
	case "pad":
		return RaggedPad, nil
	}
	return RaggedTruncate, fmt.Errorf("unknown ragged policy %q", name)
}

type options struct {
	trim     TrimPolicy
	ragged   RaggedPolicy
	encoding string
	name     string
	log      *zap.Logger
}

// Option configures a parse call.
type Option func(*options)

// WithTrim sets the row trim policy.
func WithTrim(p TrimPolicy) Option {
	return func(o *options) {
		o.trim = p
	}
}

// WithRagged sets the ragged row policy for grid parsers.
func WithRagged(p RaggedPolicy) Option {
	return func(o *options) {
		o.ragged = p
	}
}

// WithEncoding sets the text encoding used by the Load functions.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to zap.L().
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// withName tags diagnostics with the resource name.
func withName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = zap.L()
	}
	return o
}
