package textfile

import (
	"fmt"

	"github.com/Owmacohe/OMCHTools/pkg/encoding"
	"github.com/Owmacohe/OMCHTools/pkg/math"
	"github.com/Owmacohe/OMCHTools/pkg/resource"
)

// The Load functions fetch a named resource and parse it like their Parse
// counterparts. Missing resources return the loader's error, which wraps
// resource.ErrNotFound for a resource.Manager.

// LoadLines loads name and parses it with ParseLines.
func LoadLines(l resource.Loader, name string, opts ...Option) ([]string, error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	return ParseLines(text, opts...)
}

// LoadIntLines loads name and parses it with ParseIntLines.
func LoadIntLines(l resource.Loader, name string, opts ...Option) ([]int, error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	v, err := ParseIntLines(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// LoadFloatLines loads name and parses it with ParseFloatLines.
func LoadFloatLines(l resource.Loader, name string, opts ...Option) ([]float32, error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	v, err := ParseFloatLines(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// LoadVector3Lines loads name and parses it with ParseVector3Lines.
func LoadVector3Lines(l resource.Loader, name string, delim rune, opts ...Option) ([]math.Vec3, error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	v, err := ParseVector3Lines(text, delim, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// LoadGrid loads name and parses it with ParseGrid.
func LoadGrid(l resource.Loader, name string, delim rune, opts ...Option) (*Grid[string], error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	v, err := ParseGrid(text, delim, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// LoadIntGrid loads name and parses it with ParseIntGrid.
func LoadIntGrid(l resource.Loader, name string, delim rune, opts ...Option) (*Grid[int], error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	v, err := ParseIntGrid(text, delim, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// LoadFloatGrid loads name and parses it with ParseFloatGrid.
func LoadFloatGrid(l resource.Loader, name string, delim rune, opts ...Option) (*Grid[float32], error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	v, err := ParseFloatGrid(text, delim, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// LoadVector3Grid loads name and parses it with ParseVector3Grid.
func LoadVector3Grid(l resource.Loader, name string, outer, inner rune, opts ...Option) (*Grid[math.Vec3], error) {
	text, opts, err := load(l, name, opts)
	if err != nil {
		return nil, err
	}
	v, err := ParseVector3Grid(text, outer, inner, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// load fetches and decodes name, returning opts extended with the name tag.
func load(l resource.Loader, name string, opts []Option) (string, []Option, error) {
	data, err := l.Load(name)
	if err != nil {
		return "", nil, err
	}

	text, err := encoding.Decode(data, newOptions(opts).encoding)
	if err != nil {
		return "", nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	tagged := make([]Option, 0, len(opts)+1)
	tagged = append(tagged, opts...)
	tagged = append(tagged, withName(name))
	return text, tagged, nil
}
