package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/Owmacohe/OMCHTools/internal/config"
	"github.com/Owmacohe/OMCHTools/pkg/pack"
	"github.com/Owmacohe/OMCHTools/pkg/resource"
	"github.com/Owmacohe/OMCHTools/pkg/textfile"
)

var errUsage = errors.New("missing command")

type parseCommand func(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error

var parseCommands = map[string]parseCommand{
	"lines":     cmdLines,
	"ints":      cmdInts,
	"floats":    cmdFloats,
	"vectors":   cmdVectors,
	"grid":      cmdGrid,
	"intgrid":   cmdIntGrid,
	"floatgrid": cmdFloatGrid,
	"vgrid":     cmdVectorGrid,
}

func cmdLines(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	name, err := nameArg("lines", args)
	if err != nil {
		return err
	}
	values, err := textfile.LoadLines(l, name, cfg.Options()...)
	if err != nil {
		return err
	}
	return printResult(out, textfile.FormatLines(values, textfile.FormatString))
}

func cmdInts(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	name, err := nameArg("ints", args)
	if err != nil {
		return err
	}
	values, err := textfile.LoadIntLines(l, name, cfg.Options()...)
	if err != nil {
		return err
	}
	return printResult(out, textfile.FormatLines(values, textfile.FormatInt))
}

func cmdFloats(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	name, err := nameArg("floats", args)
	if err != nil {
		return err
	}
	values, err := textfile.LoadFloatLines(l, name, cfg.Options()...)
	if err != nil {
		return err
	}
	return printResult(out, textfile.FormatLines(values, textfile.FormatFloat))
}

func cmdVectors(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vectors", flag.ContinueOnError)
	delim := fs.String("d", cfg.Parser.Delimiter, "Component delimiter")
	name, err := parseNameFlags(fs, args)
	if err != nil {
		return err
	}
	d, err := delimiterRune("-d", *delim)
	if err != nil {
		return err
	}

	values, err := textfile.LoadVector3Lines(l, name, d, cfg.Options()...)
	if err != nil {
		return err
	}
	return printResult(out, textfile.FormatLines(values, textfile.FormatVector3(d)))
}

func cmdGrid(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	name, d, err := gridArgs(cfg, "grid", args)
	if err != nil {
		return err
	}
	g, err := textfile.LoadGrid(l, name, d, cfg.Options()...)
	if err != nil {
		return err
	}
	return printGrid(out, g, d, textfile.FormatString)
}

func cmdIntGrid(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	name, d, err := gridArgs(cfg, "intgrid", args)
	if err != nil {
		return err
	}
	g, err := textfile.LoadIntGrid(l, name, d, cfg.Options()...)
	if err != nil {
		return err
	}
	return printGrid(out, g, d, textfile.FormatInt)
}

func cmdFloatGrid(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	name, d, err := gridArgs(cfg, "floatgrid", args)
	if err != nil {
		return err
	}
	g, err := textfile.LoadFloatGrid(l, name, d, cfg.Options()...)
	if err != nil {
		return err
	}
	return printGrid(out, g, d, textfile.FormatFloat)
}

func cmdVectorGrid(cfg *config.Config, l resource.Loader, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vgrid", flag.ContinueOnError)
	outer := fs.String("d", cfg.Parser.Delimiter, "Cell delimiter")
	inner := fs.String("i", cfg.Parser.VectorDelimiter, "Component delimiter")
	name, err := parseNameFlags(fs, args)
	if err != nil {
		return err
	}
	od, err := delimiterRune("-d", *outer)
	if err != nil {
		return err
	}
	id, err := delimiterRune("-i", *inner)
	if err != nil {
		return err
	}

	g, err := textfile.LoadVector3Grid(l, name, od, id, cfg.Options()...)
	if err != nil {
		return err
	}
	return printGrid(out, g, od, textfile.FormatVector3(id))
}

func cmdPack(args []string, out io.Writer) error {
	if len(args) < 2 {
		return errors.New("usage: omch pack <out.pack> <dir>")
	}

	files, err := pack.CollectDir(args[1])
	if err != nil {
		return err
	}
	if err := pack.Create(args[0], files); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}

	fmt.Fprintf(out, "Packed %d files into %s\n", len(files), args[0])
	return nil
}

func cmdList(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: omch list <file.pack>")
	}

	archive, err := pack.Open(args[0])
	if err != nil {
		return err
	}
	defer archive.Close()

	for _, name := range archive.List() {
		entry, _ := archive.Stat(name)
		fmt.Fprintf(out, "%10d  %s\n", entry.UncompressedSize, name)
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) > 1 {
		return errors.New("usage: omch config [path]")
	}

	path := filepath.Join(config.ConfigDir(), config.FileName)
	if len(args) == 1 {
		path = args[0]
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	} else if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func nameArg(command string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: omch %s <name>", command)
	}
	return args[0], nil
}

func gridArgs(cfg *config.Config, command string, args []string) (string, rune, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	delim := fs.String("d", cfg.Parser.Delimiter, "Cell delimiter")
	name, err := parseNameFlags(fs, args)
	if err != nil {
		return "", 0, err
	}
	d, err := delimiterRune("-d", *delim)
	if err != nil {
		return "", 0, err
	}
	return name, d, nil
}

// parseNameFlags parses flags that may appear before or after the single
// resource name argument.
func parseNameFlags(fs *flag.FlagSet, args []string) (string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return "", err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) != 1 {
		return "", fmt.Errorf("usage: omch %s <name> [flags]", fs.Name())
	}
	return positional[0], nil
}

func delimiterRune(flagName, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s: expected a single character, got %q", flagName, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func printGrid[T any](out io.Writer, g *textfile.Grid[T], delim rune, format func(T) string) error {
	return printResult(out, textfile.FormatGrid(g, delim, format))
}

func printResult(out io.Writer, text string) error {
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
